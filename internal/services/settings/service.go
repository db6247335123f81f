package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage"
)

// Service manages the persisted provider configuration
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new settings service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Get returns the persisted configuration, or defaults when none has
// been saved
func (s *Service) Get(ctx context.Context) (*model.Settings, error) {
	settings, err := s.storage.GetSettings(ctx)
	if err != nil {
		if errors.Is(err, model.ErrSettingsNotFound) {
			return model.DefaultSettings(), nil
		}
		return nil, err
	}
	return settings, nil
}

// Save replaces the configuration. A missing credential for the
// selected provider is a non-fatal condition: the settings are saved
// anyway and a warning notice is returned for the user.
func (s *Service) Save(ctx context.Context, settings *model.Settings) (string, error) {
	if !settings.Provider.Valid() {
		return "", model.ErrUnknownProvider
	}

	if err := s.storage.SaveSettings(ctx, settings); err != nil {
		return "", err
	}

	s.logger.Info("provider configuration saved",
		slog.String("provider", string(settings.Provider)),
	)

	if settings.ActiveKey() == "" {
		return "Warning: API key for the selected provider is missing.", nil
	}
	return "", nil
}

// Seed persists the given configuration only when none exists yet.
// Used to bootstrap from environment variables on first boot.
func (s *Service) Seed(ctx context.Context, settings *model.Settings) error {
	_, err := s.storage.GetSettings(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, model.ErrSettingsNotFound) {
		return err
	}

	if !settings.Provider.Valid() {
		settings.Provider = model.ProviderGemini
	}

	s.logger.Info("seeding provider configuration from environment",
		slog.String("provider", string(settings.Provider)),
	)
	return s.storage.SaveSettings(ctx, settings)
}
