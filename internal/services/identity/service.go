package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/whimword/whimword/internal/dependencies/random"
	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage"
)

// Pseudonym vocabularies. Small on purpose: the names are flavor, not
// identifiers.
var (
	adjectives = []string{"Curious", "Sleepy", "Quantum", "Chaotic", "Dreamy", "Vivid"}
	nouns      = []string{"Duck", "Neuron", "Pixel", "Orb", "Molecule", "Quasar"}
)

// Service manages the session identity: a single user-editable display
// name, defaulting to a random pseudonym. The name is attached to
// submissions at creation time; renaming never touches past
// submissions.
type Service struct {
	storage storage.Storage
	random  random.Random
	logger  *slog.Logger
}

// New creates a new identity service
func New(storage storage.Storage, random random.Random, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		logger:  logger,
	}
}

// Current returns the persisted display name, generating and persisting
// a fresh pseudonym when none exists
func (s *Service) Current(ctx context.Context) (string, error) {
	name, err := s.storage.GetUsername(ctx)
	if err == nil {
		return name, nil
	}

	name = s.randomPseudonym()
	if err := s.storage.SaveUsername(ctx, name); err != nil {
		return "", err
	}

	s.logger.Info("generated session identity", slog.String("username", name))
	return name, nil
}

// Update adopts a new display name. Whitespace is trimmed; an empty
// result falls back to "Anonymous". Returns the adopted name.
func (s *Service) Update(ctx context.Context, name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = model.AnonymousUsername
	}

	if err := s.storage.SaveUsername(ctx, trimmed); err != nil {
		return "", err
	}

	s.logger.Info("session identity updated", slog.String("username", trimmed))
	return trimmed, nil
}

// randomPseudonym builds a {adjective}-{noun}-{1..99} name
func (s *Service) randomPseudonym() string {
	adj := adjectives[s.random.Intn(len(adjectives))]
	noun := nouns[s.random.Intn(len(nouns))]
	num := s.random.Intn(99) + 1
	return fmt.Sprintf("%s-%s-%d", adj, noun, num)
}
