package factory

import (
	"time"

	"github.com/whimword/whimword/internal/ai"
	"github.com/whimword/whimword/internal/dependencies/mocks"
	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage/memory"
	"github.com/whimword/whimword/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock   *mocks.MockClock
	MockRandom  *mocks.MockRandom
	MockGateway *mocks.MockGateway
}

// NewTestApp creates an App configured for testing with mocked
// dependencies. The AI gateway is a mock regardless of the configured
// provider, so tests exercise the full wiring without network calls.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockGateway := mocks.NewMockGateway()

	gateway := func(model.Settings) (ai.Gateway, error) {
		return mockGateway, nil
	}
	app := newWithDependencies(store, gateway, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:         app,
		MockClock:   mockClock,
		MockRandom:  mockRandom,
		MockGateway: mockGateway,
	}
}
