package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/mail"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, search string) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, patientID int) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	mailer      mail.Mailer
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	mailer mail.Mailer,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		mailer:      mailer,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{
		Name:     req.Name,
		Age:      req.Age,
		Gender:   req.Gender,
		ImageURL: req.ImageURL,
		Email:    req.Email,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	u.sendWelcomeEmail(*patient)

	return converter.PatientToResponse(patient), nil
}

// sendWelcomeEmail delivers the welcome message in the background. Delivery
// failure is logged and never surfaced to the registration caller.
func (u *patientUsecase) sendWelcomeEmail(patient entity.Patient) {
	if !patient.HasEmail() {
		return
	}

	go func() {
		body, err := mail.WelcomePatientBody(&patient)
		if err != nil {
			u.log.Warnf("Failed to compose welcome email for patient %d: %+v", patient.ID, err)
			return
		}
		if err := u.mailer.Send(patient.Email, mail.WelcomeSubject(&patient), body); err != nil {
			u.log.Warnf("Failed to send welcome email to %s: %+v", patient.Email, err)
			return
		}
		u.log.Infof("Welcome email sent to patient %d", patient.ID)
	}()
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID int) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, search string) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(u.db, search)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	return converter.PatientsToListResponse(patients), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, patientID int, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Name = req.Name
	patient.Age = req.Age
	patient.Gender = req.Gender
	patient.ImageURL = req.ImageURL
	patient.Email = req.Email

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// DeletePatient removes the patient record only. Appointments referencing the
// patient are left in place, so dangling references are expected downstream.
func (u *patientUsecase) DeletePatient(ctx context.Context, patientID int) error {
	affected, err := u.patientRepo.Delete(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	return nil
}
