package storage

import (
	"context"

	"github.com/whimword/whimword/internal/model"
)

// Storage defines the interface for data persistence. It mirrors the
// original client's string-keyed store: one entry per key, every save a
// full replacement, no transactional guarantees across keys.
//
// Corrupt persisted data is reported as absence (the not-found sentinel
// for single values, an empty list for collections), never as a
// distinct failure.
type Storage interface {
	// Current word operations
	SaveCurrentWord(ctx context.Context, word *model.DailyWord) error
	GetCurrentWord(ctx context.Context) (*model.DailyWord, error)
	ClearCurrentWord(ctx context.Context) error

	// Submission operations (the whole list is replaced on save)
	SaveSubmissions(ctx context.Context, subs []model.Submission) error
	GetSubmissions(ctx context.Context) ([]model.Submission, error)

	// Archive operations (the whole list is replaced on save)
	SaveArchive(ctx context.Context, archive []model.ArchivedWord) error
	GetArchive(ctx context.Context) ([]model.ArchivedWord, error)

	// Session identity operations (raw string, not JSON-encoded)
	SaveUsername(ctx context.Context, name string) error
	GetUsername(ctx context.Context) (string, error)

	// Provider configuration operations
	SaveSettings(ctx context.Context, settings *model.Settings) error
	GetSettings(ctx context.Context) (*model.Settings, error)
}
