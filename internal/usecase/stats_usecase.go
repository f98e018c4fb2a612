package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"gorm.io/gorm"
)

const (
	topDoctorsLimit = 5
	monthlyWindow   = 12
)

type StatsUsecase interface {
	GetStats(ctx context.Context) (*dto.StatsSnapshot, error)
	GetMonthlyAppointments(ctx context.Context) (*dto.MonthlyStatsResponse, error)
}

type statsUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	statsRepo repository.StatsRepository
}

func NewStatsUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	statsRepo repository.StatsRepository,
) StatsUsecase {
	return &statsUsecase{
		db:        db,
		log:       log,
		statsRepo: statsRepo,
	}
}

// GetStats assembles the dashboard snapshot by fanning its eight aggregate
// queries out concurrently. A failed query degrades its own field to a zero
// value and is recorded in Degraded; the snapshot itself always succeeds.
func (u *statsUsecase) GetStats(ctx context.Context) (*dto.StatsSnapshot, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAhead := today.AddDate(0, 0, 7)
	weekAgo := today.AddDate(0, 0, -7)

	snapshot := &dto.StatsSnapshot{
		GenderDistribution: []dto.GenderCount{},
		WeeklyAppointments: []dto.DayCount{},
		TopDoctors:         []dto.TopDoctor{},
	}

	var mu sync.Mutex
	fail := func(metric string, err error) {
		u.log.Warnf("Failed to load stats metric %s: %+v", metric, err)
		mu.Lock()
		snapshot.Degraded = append(snapshot.Degraded, metric)
		mu.Unlock()
	}

	db := u.db.WithContext(ctx)

	var wg conc.WaitGroup
	wg.Go(func() {
		count, err := u.statsRepo.CountPatients(db)
		if err != nil {
			fail(dto.MetricTotalPatients, err)
			return
		}
		snapshot.TotalPatients = count
	})
	wg.Go(func() {
		count, err := u.statsRepo.CountDoctors(db)
		if err != nil {
			fail(dto.MetricTotalDoctors, err)
			return
		}
		snapshot.TotalDoctors = count
	})
	wg.Go(func() {
		count, err := u.statsRepo.CountAppointments(db)
		if err != nil {
			fail(dto.MetricTotalAppointments, err)
			return
		}
		snapshot.TotalAppointments = count
	})
	wg.Go(func() {
		count, err := u.statsRepo.CountAppointmentsOn(db, today)
		if err != nil {
			fail(dto.MetricTodaysAppointments, err)
			return
		}
		snapshot.TodaysAppointments = count
	})
	wg.Go(func() {
		count, err := u.statsRepo.CountAppointmentsBetween(db, today, weekAhead)
		if err != nil {
			fail(dto.MetricUpcomingAppointments, err)
			return
		}
		snapshot.UpcomingAppointments = count
	})
	wg.Go(func() {
		rows, err := u.statsRepo.GenderDistribution(db)
		if err != nil {
			fail(dto.MetricGenderDistribution, err)
			return
		}
		buckets := make([]dto.GenderCount, len(rows))
		for i, row := range rows {
			buckets[i] = dto.GenderCount{Gender: row.Gender, Count: row.Count}
		}
		snapshot.GenderDistribution = buckets
	})
	wg.Go(func() {
		rows, err := u.statsRepo.AppointmentsPerDay(db, weekAgo, today)
		if err != nil {
			fail(dto.MetricWeeklyAppointments, err)
			return
		}
		days := make([]dto.DayCount, len(rows))
		for i, row := range rows {
			days[i] = dto.DayCount{Date: row.Date, Count: row.Count}
		}
		snapshot.WeeklyAppointments = days
	})
	wg.Go(func() {
		rows, err := u.statsRepo.TopDoctorsByAppointments(db, topDoctorsLimit)
		if err != nil {
			fail(dto.MetricTopDoctors, err)
			return
		}
		doctors := make([]dto.TopDoctor, len(rows))
		for i, row := range rows {
			doctors[i] = dto.TopDoctor{
				Name:             row.Name,
				Specialty:        row.Specialty,
				AppointmentCount: row.AppointmentCount,
			}
		}
		snapshot.TopDoctors = doctors
	})
	wg.Wait()

	sort.Strings(snapshot.Degraded)

	return snapshot, nil
}

// GetMonthlyAppointments returns the per-month appointment counts for the
// trailing year, most recent month first. Degrades to an empty list on error.
func (u *statsUsecase) GetMonthlyAppointments(ctx context.Context) (*dto.MonthlyStatsResponse, error) {
	rows, err := u.statsRepo.MonthlyAppointments(u.db.WithContext(ctx), monthlyWindow)
	if err != nil {
		u.log.Warnf("Failed to load monthly appointment stats: %+v", err)
		return &dto.MonthlyStatsResponse{Monthly: []dto.MonthCount{}}, nil
	}

	monthly := make([]dto.MonthCount, len(rows))
	for i, row := range rows {
		monthly[i] = dto.MonthCount{Month: row.Month, Count: row.Count}
	}

	return &dto.MonthlyStatsResponse{Monthly: monthly}, nil
}
