package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

// StatsRepository exposes the independent aggregate queries behind the
// dashboard snapshot. Each method stands alone so callers can run them
// concurrently and degrade per metric.
type StatsRepository interface {
	CountPatients(db *gorm.DB) (int64, error)
	CountDoctors(db *gorm.DB) (int64, error)
	CountAppointments(db *gorm.DB) (int64, error)
	CountAppointmentsOn(db *gorm.DB, date time.Time) (int64, error)
	CountAppointmentsBetween(db *gorm.DB, from, to time.Time) (int64, error)
	// GenderDistribution groups patients by gender, excluding blank values.
	GenderDistribution(db *gorm.DB) ([]entity.GenderCount, error)
	AppointmentsPerDay(db *gorm.DB, from, to time.Time) ([]entity.DayCount, error)
	TopDoctorsByAppointments(db *gorm.DB, limit int) ([]entity.DoctorAppointmentCount, error)
	MonthlyAppointments(db *gorm.DB, months int) ([]entity.MonthCount, error)
}
