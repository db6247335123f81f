package handler

import (
	"encoding/json"
	"net/http"

	"github.com/whimword/whimword/internal/api/request"
	"github.com/whimword/whimword/internal/api/response"
	"github.com/whimword/whimword/internal/services/identity"
)

// IdentityHandler handles session identity endpoints
type IdentityHandler struct {
	identityService *identity.Service
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identityService *identity.Service) *IdentityHandler {
	return &IdentityHandler{
		identityService: identityService,
	}
}

// Get handles GET /api/v1/username
func (h *IdentityHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := h.identityService.Current(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Username{Username: name})
}

// Update handles PUT /api/v1/username
func (h *IdentityHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUsernameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("Invalid request body"))
		return
	}

	name, err := h.identityService.Update(r.Context(), req.Username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Username{Username: name})
}
