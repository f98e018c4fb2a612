package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatsUsecase struct {
	snapshot *dto.StatsSnapshot
	monthly  *dto.MonthlyStatsResponse
}

func (s *stubStatsUsecase) GetStats(ctx context.Context) (*dto.StatsSnapshot, error) {
	return s.snapshot, nil
}

func (s *stubStatsUsecase) GetMonthlyAppointments(ctx context.Context) (*dto.MonthlyStatsResponse, error) {
	return s.monthly, nil
}

func TestGetStatsResponseShape(t *testing.T) {
	h := NewStatsHandler(&stubStatsUsecase{
		snapshot: &dto.StatsSnapshot{
			TotalPatients:      10,
			TotalDoctors:       3,
			GenderDistribution: []dto.GenderCount{{Gender: "female", Count: 6}},
			WeeklyAppointments: []dto.DayCount{},
			TopDoctors:         []dto.TopDoctor{},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body.Data, &data))

	// camelCase wire format
	assert.Contains(t, data, "totalPatients")
	assert.Contains(t, data, "genderDistribution")
	assert.Contains(t, data, "weeklyAppointments")
	assert.Contains(t, data, "topDoctors")

	// degraded is omitted when every query succeeded
	assert.NotContains(t, data, "degraded")
}

func TestGetStatsDegradedListed(t *testing.T) {
	h := NewStatsHandler(&stubStatsUsecase{
		snapshot: &dto.StatsSnapshot{
			GenderDistribution: []dto.GenderCount{},
			WeeklyAppointments: []dto.DayCount{},
			TopDoctors:         []dto.TopDoctor{},
			Degraded:           []string{dto.MetricTotalPatients},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	rec := httptest.NewRecorder()
	h.GetStats(rec, req)

	// the snapshot degrades instead of failing the request
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"degraded":["totalPatients"]`)
}

func TestGetMonthlyAppointmentsResponse(t *testing.T) {
	h := NewStatsHandler(&stubStatsUsecase{
		monthly: &dto.MonthlyStatsResponse{
			Monthly: []dto.MonthCount{{Month: "2026-08", Count: 25}},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/appointments", nil)
	rec := httptest.NewRecorder()
	h.GetMonthlyAppointments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"month":"2026-08"`)
	assert.Contains(t, rec.Body.String(), `"count":25`)
}
