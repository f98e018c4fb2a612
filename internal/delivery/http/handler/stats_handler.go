package handler

import (
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type StatsHandler struct {
	statsUsecase usecase.StatsUsecase
}

func NewStatsHandler(statsUsecase usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{
		statsUsecase: statsUsecase,
	}
}

// GetStats handles the dashboard statistics snapshot
// @Summary Get dashboard statistics
// @Description Get the aggregate dashboard snapshot. Metrics whose query failed are zeroed and listed under degraded.
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /stats [get]
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.statsUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get statistics")
		return
	}

	response.Success(w, http.StatusOK, "Statistics retrieved successfully", snapshot)
}

// GetMonthlyAppointments handles the monthly appointment breakdown
// @Summary Get monthly appointment statistics
// @Description Get per-month appointment counts for the trailing year
// @Tags Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /stats/appointments [get]
func (h *StatsHandler) GetMonthlyAppointments(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsUsecase.GetMonthlyAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get appointment statistics")
		return
	}

	response.Success(w, http.StatusOK, "Appointment statistics retrieved successfully", stats)
}
