package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/whimword/whimword/internal/api/handler"
	apimiddleware "github.com/whimword/whimword/internal/api/middleware"
	"github.com/whimword/whimword/internal/middleware"
	"github.com/whimword/whimword/internal/services/day"
	"github.com/whimword/whimword/internal/services/identity"
	"github.com/whimword/whimword/internal/services/settings"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	DayController   *day.Controller
	IdentityService *identity.Service
	SettingsService *settings.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	todayHandler := handler.NewTodayHandler(cfg.DayController)
	submissionHandler := handler.NewSubmissionHandler(cfg.DayController)
	identityHandler := handler.NewIdentityHandler(cfg.IdentityService)
	archiveHandler := handler.NewArchiveHandler(cfg.DayController)
	adminHandler := handler.NewAdminHandler(cfg.DayController, cfg.SettingsService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Today view
	api.HandleFunc("/today", todayHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/today/results", todayHandler.DismissResults).Methods(http.MethodDelete)
	api.HandleFunc("/today/submissions", submissionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/today/submissions/{id}/like", submissionHandler.Like).Methods(http.MethodPost)

	// Session identity
	api.HandleFunc("/username", identityHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/username", identityHandler.Update).Methods(http.MethodPut)

	// Archive
	api.HandleFunc("/archive", archiveHandler.List).Methods(http.MethodGet)

	// Admin (the hidden surface behind the client keychord)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/rollover", adminHandler.Rollover).Methods(http.MethodPost)
	admin.HandleFunc("/summarize", adminHandler.Summarize).Methods(http.MethodPost)
	admin.HandleFunc("/word", adminHandler.SetWord).Methods(http.MethodPut)
	admin.HandleFunc("/image", adminHandler.RegenerateImage).Methods(http.MethodPost)
	admin.HandleFunc("/settings", adminHandler.GetSettings).Methods(http.MethodGet)
	admin.HandleFunc("/settings", adminHandler.UpdateSettings).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
