package dto

// Request DTOs

type CreatePatientRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender   string `json:"gender" validate:"omitempty,max=50"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Email    string `json:"email" validate:"omitempty,email"`
}

type UpdatePatientRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Age      *int   `json:"age" validate:"omitempty,gte=0,lte=150"`
	Gender   string `json:"gender" validate:"omitempty,max=50"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type PatientResponse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Age      *int   `json:"age,omitempty"`
	Gender   string `json:"gender,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	Email    string `json:"email,omitempty"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
