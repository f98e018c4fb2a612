package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id int) (*entity.Appointment, error)
	// FindAll returns appointments ordered by date DESC, time DESC,
	// optionally restricted to a single calendar date.
	FindAll(db *gorm.DB, date *time.Time) ([]entity.Appointment, error)
	// FindByDateWithRelations returns all appointments on the given date
	// with their Patient and Doctor records loaded.
	FindByDateWithRelations(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int) (int64, error)
}
