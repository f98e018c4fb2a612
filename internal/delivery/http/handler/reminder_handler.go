package handler

import (
	"net/http"

	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/response"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
}

func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
	}
}

// Run triggers a reminder cycle immediately
// @Summary Run the reminder cycle
// @Description Run one email reminder cycle for tomorrow's appointments without waiting for the schedule
// @Tags Reminders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /admin/reminders/run [post]
func (h *ReminderHandler) Run(w http.ResponseWriter, r *http.Request) {
	h.reminderService.RunOnce(r.Context())
	response.Success(w, http.StatusOK, "Reminder cycle executed", nil)
}
