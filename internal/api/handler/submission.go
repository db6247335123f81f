package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whimword/whimword/internal/api/request"
	"github.com/whimword/whimword/internal/api/response"
	"github.com/whimword/whimword/internal/services/day"
)

// SubmissionHandler handles definition submission endpoints
type SubmissionHandler struct {
	dayController *day.Controller
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(dayController *day.Controller) *SubmissionHandler {
	return &SubmissionHandler{
		dayController: dayController,
	}
}

// Create handles POST /api/v1/today/submissions
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	sub, err := h.dayController.AddSubmission(r.Context(), req.Text)
	if err != nil {
		WriteError(w, err)
		return
	}
	if sub == nil {
		// Blank text is silently dropped
		response.NoContent(w)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmissionFromModel(*sub))
}

// Like handles POST /api/v1/today/submissions/{id}/like
func (h *SubmissionHandler) Like(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.dayController.LikeSubmission(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
