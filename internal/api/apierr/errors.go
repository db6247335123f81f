package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/whimword/whimword/internal/ai"
	"github.com/whimword/whimword/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeNoCurrentWord      = "NO_CURRENT_WORD"
	CodeNoSubmissions      = "NO_SUBMISSIONS"
	CodeEmptyWord          = "EMPTY_WORD"
	CodeRolloverInProgress = "ROLLOVER_IN_PROGRESS"
	CodeUnknownProvider    = "UNKNOWN_PROVIDER"
	CodeMissingAPIKey      = "MISSING_API_KEY"
	CodeProviderFailure    = "PROVIDER_FAILURE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrNoCurrentWord):
		return &httpError{http.StatusConflict, APIError{CodeNoCurrentWord, "No word is active today"}}
	case errors.Is(err, model.ErrNoSubmissions):
		return &httpError{http.StatusConflict, APIError{CodeNoSubmissions, "No definitions have been submitted yet"}}
	case errors.Is(err, model.ErrEmptyWord):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyWord, "Word must not be empty"}}
	case errors.Is(err, model.ErrRolloverInProgress):
		return &httpError{http.StatusConflict, APIError{CodeRolloverInProgress, "A day transition is already in progress"}}
	case errors.Is(err, model.ErrUnknownProvider):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownProvider, "Unknown AI provider"}}
	case errors.Is(err, ai.ErrMissingAPIKey):
		return &httpError{http.StatusConflict, APIError{CodeMissingAPIKey, "API key for the selected provider is missing"}}
	default:
		var provErr *ai.ProviderError
		if errors.As(err, &provErr) {
			return &httpError{http.StatusBadGateway, APIError{CodeProviderFailure, provErr.Error()}}
		}
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
