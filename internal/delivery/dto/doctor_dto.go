package dto

// Request DTOs

type CreateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"omitempty,max=255"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Email     string `json:"email" validate:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	Name      string `json:"name" validate:"required,min=2"`
	Specialty string `json:"specialty" validate:"omitempty,max=255"`
	ImageURL  string `json:"image_url" validate:"omitempty,url"`
	Email     string `json:"email" validate:"omitempty,email"`
}

// Response DTOs

type DoctorResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty,omitempty"`
	ImageURL  string `json:"image_url,omitempty"`
	Email     string `json:"email,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
