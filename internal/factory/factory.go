package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/whimword/whimword/internal/ai"
	"github.com/whimword/whimword/internal/dependencies/clock"
	"github.com/whimword/whimword/internal/dependencies/random"
	"github.com/whimword/whimword/internal/services/day"
	"github.com/whimword/whimword/internal/services/identity"
	"github.com/whimword/whimword/internal/services/settings"
	"github.com/whimword/whimword/internal/storage"
	"github.com/whimword/whimword/internal/storage/memory"
	redisstorage "github.com/whimword/whimword/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SettingsService *settings.Service
	IdentityService *identity.Service
	DayController   *day.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, ai.New, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, gateway day.GatewayFactory, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	settingsService := settings.New(store, logger)
	identityService := identity.New(store, rnd, logger)
	dayController := day.NewController(store, gateway, settingsService, identityService, clk, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		Random:          rnd,
		SettingsService: settingsService,
		IdentityService: identityService,
		DayController:   dayController,
	}
}
