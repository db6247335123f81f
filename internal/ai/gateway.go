package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/whimword/whimword/internal/model"
)

// Gateway is the provider-agnostic contract for the generative AI
// backends. Exactly three operations are needed: invent a word,
// illustrate it, and synthesize a day's submissions into winning
// definitions.
type Gateway interface {
	// GenerateWord returns a pronounceable nonsense word, stripped of
	// all non-letter characters.
	GenerateWord(ctx context.Context) (string, error)

	// GenerateImage returns a base64-encoded illustration for the given
	// prompt word.
	GenerateImage(ctx context.Context, prompt string) (string, error)

	// SummarizeDefinitions returns up to three synthesized definitions
	// for the word, weighing submissions by like count. Callers must
	// not invoke it with zero submissions.
	SummarizeDefinitions(ctx context.Context, word string, subs []model.Submission) ([]string, error)
}

// ErrMissingAPIKey is returned when the selected provider has no
// credential configured. Word generation is blocked entirely; the rest
// of the app keeps working.
var ErrMissingAPIKey = errors.New("API key for the selected provider is missing")

// ProviderError wraps any upstream failure from a provider
type ProviderError struct {
	Provider model.Provider
	Op       string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Provider, e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// New returns the gateway for the provider selected in settings. A
// missing credential yields ErrMissingAPIKey.
func New(settings model.Settings) (Gateway, error) {
	provider := settings.Provider
	if provider == "" {
		provider = model.ProviderGemini
	}
	if !provider.Valid() {
		return nil, model.ErrUnknownProvider
	}

	key := settings.KeyFor(provider)
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	if provider == model.ProviderOpenAI {
		return NewOpenAI(key), nil
	}
	return NewGemini(key), nil
}
