package handler

import (
	"net/http"

	"github.com/whimword/whimword/internal/api/response"
	"github.com/whimword/whimword/internal/services/day"
)

// TodayHandler handles the current-day view endpoints
type TodayHandler struct {
	dayController *day.Controller
}

// NewTodayHandler creates a new today handler
func NewTodayHandler(dayController *day.Controller) *TodayHandler {
	return &TodayHandler{
		dayController: dayController,
	}
}

// Get handles GET /api/v1/today
func (h *TodayHandler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.dayController.Snapshot(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TodayFromSnapshot(snap))
}

// DismissResults handles DELETE /api/v1/today/results
func (h *TodayHandler) DismissResults(w http.ResponseWriter, r *http.Request) {
	h.dayController.ClearPreviousDayResults()
	response.NoContent(w)
}
