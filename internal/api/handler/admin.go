package handler

import (
	"encoding/json"
	"net/http"

	"github.com/whimword/whimword/internal/api/request"
	"github.com/whimword/whimword/internal/api/response"
	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/services/day"
	"github.com/whimword/whimword/internal/services/settings"
)

// AdminHandler handles the hidden admin endpoints: manual word
// override, forced rollover and summarization, image regeneration,
// and provider configuration.
type AdminHandler struct {
	dayController   *day.Controller
	settingsService *settings.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(dayController *day.Controller, settingsService *settings.Service) *AdminHandler {
	return &AdminHandler{
		dayController:   dayController,
		settingsService: settingsService,
	}
}

// rolloverResponse converts a day.RolloverResult
func rolloverResponse(result *day.RolloverResult) response.Rollover {
	resp := response.Rollover{Notice: result.Notice}
	if result.Word != nil {
		w := response.WordFromModel(result.Word)
		resp.Word = &w
	}
	if result.Archived != nil {
		a := response.ArchivedWordFromModel(result.Archived)
		resp.Archived = &a
	}
	return resp
}

// Rollover handles POST /api/v1/admin/rollover
func (h *AdminHandler) Rollover(w http.ResponseWriter, r *http.Request) {
	result, err := h.dayController.RollDay(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rolloverResponse(result))
}

// Summarize handles POST /api/v1/admin/summarize
func (h *AdminHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	result, err := h.dayController.TriggerSummarization(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, rolloverResponse(result))
}

// SetWord handles PUT /api/v1/admin/word
func (h *AdminHandler) SetWord(w http.ResponseWriter, r *http.Request) {
	var req request.SetWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	word, err := h.dayController.ManuallySetWord(r.Context(), req.Word)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordFromModel(word))
}

// RegenerateImage handles POST /api/v1/admin/image
func (h *AdminHandler) RegenerateImage(w http.ResponseWriter, r *http.Request) {
	word, err := h.dayController.RegenerateImage(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordFromModel(word))
}

// GetSettings handles GET /api/v1/admin/settings
func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsFromModel(cfg, ""))
}

// UpdateSettings handles PUT /api/v1/admin/settings. Keys omitted from
// the request keep their stored values.
func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	cfg, err := h.settingsService.Get(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	cfg.Provider = model.Provider(req.Provider)
	if req.GeminiKey != nil {
		cfg.Keys.Gemini = *req.GeminiKey
	}
	if req.OpenAIKey != nil {
		cfg.Keys.OpenAI = *req.OpenAIKey
	}

	notice, err := h.settingsService.Save(r.Context(), cfg)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsFromModel(cfg, notice))
}
