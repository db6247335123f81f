package handler

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/whimword/whimword/internal/api/response"
	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/services/day"
)

// ArchiveHandler handles the past-words archive endpoint
type ArchiveHandler struct {
	dayController *day.Controller
}

// NewArchiveHandler creates a new archive handler
func NewArchiveHandler(dayController *day.Controller) *ArchiveHandler {
	return &ArchiveHandler{
		dayController: dayController,
	}
}

// List handles GET /api/v1/archive
func (h *ArchiveHandler) List(w http.ResponseWriter, r *http.Request) {
	archive, err := h.dayController.Archive(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	entries := lo.Map(archive, func(a model.ArchivedWord, _ int) response.ArchivedWord {
		return response.ArchivedWordFromModel(&a)
	})
	response.JSON(w, http.StatusOK, entries)
}
