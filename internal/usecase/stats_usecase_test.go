package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testDB builds an unconnected gorm instance. The stubs never touch the
// connection pool, so no database needs to be running.
func testDB() *gorm.DB {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=test dbname=test",
	}), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		panic(err)
	}
	return db
}

// stubStatsRepository serves fixed aggregate values and can be told to fail
// individual queries.
type stubStatsRepository struct {
	patients     int64
	doctors      int64
	appointments int64
	today        int64
	upcoming     int64
	genders      []entity.GenderCount
	daily        []entity.DayCount
	topDoctors   []entity.DoctorAppointmentCount
	monthly      []entity.MonthCount

	failing map[string]error
}

func (s *stubStatsRepository) failure(query string) error {
	if s.failing == nil {
		return nil
	}
	return s.failing[query]
}

func (s *stubStatsRepository) CountPatients(db *gorm.DB) (int64, error) {
	return s.patients, s.failure("patients")
}

func (s *stubStatsRepository) CountDoctors(db *gorm.DB) (int64, error) {
	return s.doctors, s.failure("doctors")
}

func (s *stubStatsRepository) CountAppointments(db *gorm.DB) (int64, error) {
	return s.appointments, s.failure("appointments")
}

func (s *stubStatsRepository) CountAppointmentsOn(db *gorm.DB, date time.Time) (int64, error) {
	return s.today, s.failure("today")
}

func (s *stubStatsRepository) CountAppointmentsBetween(db *gorm.DB, from, to time.Time) (int64, error) {
	return s.upcoming, s.failure("upcoming")
}

func (s *stubStatsRepository) GenderDistribution(db *gorm.DB) ([]entity.GenderCount, error) {
	return s.genders, s.failure("genders")
}

func (s *stubStatsRepository) AppointmentsPerDay(db *gorm.DB, from, to time.Time) ([]entity.DayCount, error) {
	return s.daily, s.failure("daily")
}

func (s *stubStatsRepository) TopDoctorsByAppointments(db *gorm.DB, limit int) ([]entity.DoctorAppointmentCount, error) {
	return s.topDoctors, s.failure("topDoctors")
}

func (s *stubStatsRepository) MonthlyAppointments(db *gorm.DB, months int) ([]entity.MonthCount, error) {
	return s.monthly, s.failure("monthly")
}

func fullStatsRepository() *stubStatsRepository {
	return &stubStatsRepository{
		patients:     10,
		doctors:      3,
		appointments: 25,
		today:        2,
		upcoming:     7,
		genders: []entity.GenderCount{
			{Gender: "female", Count: 6},
			{Gender: "male", Count: 4},
		},
		daily: []entity.DayCount{
			{Date: "2026-08-30", Count: 3},
			{Date: "2026-08-31", Count: 2},
		},
		topDoctors: []entity.DoctorAppointmentCount{
			{Name: "Janet Fraiser", Specialty: "Internal Medicine", AppointmentCount: 12},
		},
		monthly: []entity.MonthCount{
			{Month: "2026-08", Count: 25},
		},
	}
}

func TestGetStatsAllQueriesSucceed(t *testing.T) {
	repo := fullStatsRepository()
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	snapshot, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), snapshot.TotalPatients)
	assert.Equal(t, int64(3), snapshot.TotalDoctors)
	assert.Equal(t, int64(25), snapshot.TotalAppointments)
	assert.Equal(t, int64(2), snapshot.TodaysAppointments)
	assert.Equal(t, int64(7), snapshot.UpcomingAppointments)
	assert.Len(t, snapshot.GenderDistribution, 2)
	assert.Len(t, snapshot.WeeklyAppointments, 2)
	assert.Len(t, snapshot.TopDoctors, 1)
	assert.Empty(t, snapshot.Degraded)
}

func TestGetStatsNoAppointmentsIsNotAnError(t *testing.T) {
	repo := &stubStatsRepository{patients: 10, doctors: 3}
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	snapshot, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), snapshot.TotalPatients)
	assert.Equal(t, int64(3), snapshot.TotalDoctors)
	assert.Equal(t, int64(0), snapshot.TotalAppointments)
	assert.Empty(t, snapshot.TopDoctors)
	assert.Empty(t, snapshot.Degraded)
}

func TestGetStatsDegradesSingleMetric(t *testing.T) {
	repo := fullStatsRepository()
	repo.failing = map[string]error{"patients": errors.New("relation does not exist")}
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	snapshot, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), snapshot.TotalPatients)
	assert.Equal(t, []string{dto.MetricTotalPatients}, snapshot.Degraded)

	// other metrics are untouched
	assert.Equal(t, int64(3), snapshot.TotalDoctors)
	assert.Len(t, snapshot.TopDoctors, 1)
}

func TestGetStatsDegradesListMetricToEmptySlice(t *testing.T) {
	repo := fullStatsRepository()
	repo.failing = map[string]error{"genders": errors.New("timeout")}
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	snapshot, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, snapshot.GenderDistribution)
	assert.Empty(t, snapshot.GenderDistribution)
	assert.Equal(t, []string{dto.MetricGenderDistribution}, snapshot.Degraded)
}

func TestGetStatsAllQueriesFail(t *testing.T) {
	boom := errors.New("connection refused")
	repo := fullStatsRepository()
	repo.failing = map[string]error{
		"patients": boom, "doctors": boom, "appointments": boom,
		"today": boom, "upcoming": boom, "genders": boom,
		"daily": boom, "topDoctors": boom,
	}
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	snapshot, err := uc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), snapshot.TotalPatients)
	assert.Equal(t, int64(0), snapshot.UpcomingAppointments)
	assert.Empty(t, snapshot.TopDoctors)

	// degraded list is sorted and complete
	assert.Equal(t, []string{
		dto.MetricGenderDistribution,
		dto.MetricTodaysAppointments,
		dto.MetricTopDoctors,
		dto.MetricTotalAppointments,
		dto.MetricTotalDoctors,
		dto.MetricTotalPatients,
		dto.MetricUpcomingAppointments,
		dto.MetricWeeklyAppointments,
	}, snapshot.Degraded)
}

func TestGetMonthlyAppointments(t *testing.T) {
	repo := fullStatsRepository()
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	stats, err := uc.GetMonthlyAppointments(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.Monthly, 1)
	assert.Equal(t, "2026-08", stats.Monthly[0].Month)
	assert.Equal(t, int64(25), stats.Monthly[0].Count)
}

func TestGetMonthlyAppointmentsDegradesToEmpty(t *testing.T) {
	repo := fullStatsRepository()
	repo.failing = map[string]error{"monthly": errors.New("timeout")}
	uc := NewStatsUsecase(testDB(), quietLogger(), repo)

	stats, err := uc.GetMonthlyAppointments(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, stats.Monthly)
	assert.Empty(t, stats.Monthly)
}
