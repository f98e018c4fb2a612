package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to its response DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:       patient.ID,
		Name:     patient.Name,
		Age:      patient.Age,
		Gender:   patient.Gender,
		ImageURL: patient.ImageURL,
		Email:    patient.Email,
	}
}

// PatientsToListResponse converts a slice of Patient entities to a list DTO
func PatientsToListResponse(patients []entity.Patient) *dto.PatientListResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}
}
