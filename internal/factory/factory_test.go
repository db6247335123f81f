package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whimword/whimword/internal/storage/memory"
)

func TestNewDefaultsToMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)

	assert.IsType(t, &memory.Storage{}, app.Storage)
	assert.NotNil(t, app.DayController)
	assert.NotNil(t, app.IdentityService)
	assert.NotNil(t, app.SettingsService)
}

func TestNewRejectsRedisWithoutConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	require.Error(t, err)
}

func TestNewRejectsUnknownStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "papyrus"})
	require.Error(t, err)
}

func TestTestAppWiresMockGateway(t *testing.T) {
	app := NewTestApp()
	app.MockGateway.QueueWord("snorfle")

	result, err := app.DayController.RollDay(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "snorfle", result.Word.Word)
}
