package repository

import (
	"os"
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// These tests pin real SQL behavior and need a postgres instance. Set
// TEST_DB_DSN to run them, e.g.
// "host=localhost user=postgres password=postgres dbname=hospital_test port=5432 sslmode=disable"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping database tests")
	}

	// the production schema carries no foreign keys, so the test schema
	// must not either
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Discard,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&entity.Patient{}, &entity.Doctor{}, &entity.Appointment{}))

	t.Cleanup(func() {
		db.Exec("DELETE FROM appointments")
		db.Exec("DELETE FROM patients")
		db.Exec("DELETE FROM doctors")
	})

	return db
}

func TestGenderDistributionExcludesBlank(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository()

	patients := []entity.Patient{
		{Name: "A", Gender: "female"},
		{Name: "B", Gender: "female"},
		{Name: "C", Gender: "male"},
		{Name: "D", Gender: ""},
	}
	require.NoError(t, db.Create(&patients).Error)

	rows, err := repo.GenderDistribution(db)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "female", rows[0].Gender)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.Equal(t, "male", rows[1].Gender)
	assert.Equal(t, int64(1), rows[1].Count)
}

func TestTopDoctorsByAppointmentsRanksAndLimits(t *testing.T) {
	db := setupTestDB(t)
	repo := NewStatsRepository()

	doctors := []entity.Doctor{
		{Name: "Busy", Specialty: "Cardiology"},
		{Name: "Quiet", Specialty: "Dermatology"},
	}
	require.NoError(t, db.Create(&doctors).Error)

	patient := entity.Patient{Name: "P"}
	require.NoError(t, db.Create(&patient).Error)

	date := time.Now()
	for i := 0; i < 3; i++ {
		appt := entity.Appointment{PatientID: patient.ID, DoctorID: doctors[0].ID, Date: date, Time: "10:00"}
		require.NoError(t, db.Create(&appt).Error)
	}
	appt := entity.Appointment{PatientID: patient.ID, DoctorID: doctors[1].ID, Date: date, Time: "10:00"}
	require.NoError(t, db.Create(&appt).Error)

	rows, err := repo.TopDoctorsByAppointments(db, 1)
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Busy", rows[0].Name)
	assert.Equal(t, int64(3), rows[0].AppointmentCount)
}

func TestAppointmentDeleteLeavesNoRows(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAppointmentRepository()

	patient := entity.Patient{Name: "P"}
	require.NoError(t, db.Create(&patient).Error)
	doctor := entity.Doctor{Name: "D"}
	require.NoError(t, db.Create(&doctor).Error)

	appt := &entity.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, Date: time.Now(), Time: "10:00"}
	require.NoError(t, repo.Create(db, appt))

	affected, err := repo.Delete(db, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = repo.Delete(db, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

// Orphan tolerance: deleting a patient leaves their appointments in place.
func TestPatientDeleteLeavesAppointments(t *testing.T) {
	db := setupTestDB(t)
	patientRepo := NewPatientRepository()
	appointmentRepo := NewAppointmentRepository()

	patient := entity.Patient{Name: "P"}
	require.NoError(t, db.Create(&patient).Error)
	doctor := entity.Doctor{Name: "D"}
	require.NoError(t, db.Create(&doctor).Error)

	appt := &entity.Appointment{PatientID: patient.ID, DoctorID: doctor.ID, Date: time.Now(), Time: "10:00"}
	require.NoError(t, appointmentRepo.Create(db, appt))

	affected, err := patientRepo.Delete(db, patient.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	remaining, err := appointmentRepo.FindByID(db, appt.ID)
	require.NoError(t, err)
	require.NotNil(t, remaining)
	assert.Equal(t, patient.ID, remaining.PatientID)
}
