package dto

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"` // Format: YYYY-MM-DD
	Time      string `json:"time" validate:"required"` // Format: HH:MM
	Reason    string `json:"reason" validate:"omitempty"`
}

type UpdateAppointmentRequest struct {
	PatientID int    `json:"patient_id" validate:"required,gt=0"`
	DoctorID  int    `json:"doctor_id" validate:"required,gt=0"`
	Date      string `json:"date" validate:"required"`
	Time      string `json:"time" validate:"required"`
	Reason    string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        int    `json:"id"`
	PatientID int    `json:"patient_id"`
	DoctorID  int    `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
