package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
)

type statsRepository struct{}

func NewStatsRepository() domainRepo.StatsRepository {
	return &statsRepository{}
}

func (r *statsRepository) CountPatients(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountDoctors(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountAppointments(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Count(&count).Error
	return count, err
}

func (r *statsRepository) CountAppointmentsOn(db *gorm.DB, date time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date = ?", date.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) CountAppointmentsBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *statsRepository) GenderDistribution(db *gorm.DB) ([]entity.GenderCount, error) {
	var rows []entity.GenderCount
	err := db.Model(&entity.Patient{}).
		Select("gender, COUNT(*) AS count").
		Where("gender IS NOT NULL AND gender <> ''").
		Group("gender").
		Order("gender").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) AppointmentsPerDay(db *gorm.DB, from, to time.Time) ([]entity.DayCount, error) {
	var rows []entity.DayCount
	err := db.Model(&entity.Appointment{}).
		Select("to_char(date, 'YYYY-MM-DD') AS date, COUNT(*) AS count").
		Where("date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Group("date").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) TopDoctorsByAppointments(db *gorm.DB, limit int) ([]entity.DoctorAppointmentCount, error) {
	var rows []entity.DoctorAppointmentCount
	err := db.Table("appointments").
		Select("doctors.name, doctors.specialty, COUNT(appointments.id) AS appointment_count").
		Joins("JOIN doctors ON appointments.doctor_id = doctors.id").
		Group("appointments.doctor_id, doctors.name, doctors.specialty").
		Order("appointment_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *statsRepository) MonthlyAppointments(db *gorm.DB, months int) ([]entity.MonthCount, error) {
	var rows []entity.MonthCount
	err := db.Model(&entity.Appointment{}).
		Select("to_char(date, 'YYYY-MM') AS month, COUNT(*) AS count").
		Group("to_char(date, 'YYYY-MM')").
		Order("month DESC").
		Limit(months).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
