package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Values are held as encoded JSON under the same key names the Redis
// implementation uses, so both backends share the original client's
// string-store semantics, including corrupt-data-as-absence.
type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// Key names, matching the original client's store layout
const (
	keyCurrentWord = "currentWord"
	keySubmissions = "submissions"
	keyArchive     = "archive"
	keyUsername    = "username"
	keyProvider    = "aiProvider"
	keyAPIKeys     = "apiKeys"
)

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		data: make(map[string][]byte),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) setJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *Storage) get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[key]
	return data, ok
}

// Current word operations

func (s *Storage) SaveCurrentWord(ctx context.Context, word *model.DailyWord) error {
	return s.setJSON(keyCurrentWord, word)
}

func (s *Storage) GetCurrentWord(ctx context.Context) (*model.DailyWord, error) {
	data, ok := s.get(keyCurrentWord)
	if !ok {
		return nil, model.ErrWordNotFound
	}
	var word model.DailyWord
	if err := json.Unmarshal(data, &word); err != nil {
		// Corrupt data degrades to "no data found"
		return nil, model.ErrWordNotFound
	}
	return &word, nil
}

func (s *Storage) ClearCurrentWord(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, keyCurrentWord)
	return nil
}

// Submission operations

func (s *Storage) SaveSubmissions(ctx context.Context, subs []model.Submission) error {
	if subs == nil {
		subs = []model.Submission{}
	}
	return s.setJSON(keySubmissions, subs)
}

func (s *Storage) GetSubmissions(ctx context.Context) ([]model.Submission, error) {
	data, ok := s.get(keySubmissions)
	if !ok {
		return nil, nil
	}
	var subs []model.Submission
	if err := json.Unmarshal(data, &subs); err != nil {
		return nil, nil
	}
	return subs, nil
}

// Archive operations

func (s *Storage) SaveArchive(ctx context.Context, archive []model.ArchivedWord) error {
	if archive == nil {
		archive = []model.ArchivedWord{}
	}
	return s.setJSON(keyArchive, archive)
}

func (s *Storage) GetArchive(ctx context.Context) ([]model.ArchivedWord, error) {
	data, ok := s.get(keyArchive)
	if !ok {
		return nil, nil
	}
	var archive []model.ArchivedWord
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, nil
	}
	return archive, nil
}

// Session identity operations

func (s *Storage) SaveUsername(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[keyUsername] = []byte(name)
	return nil
}

func (s *Storage) GetUsername(ctx context.Context) (string, error) {
	data, ok := s.get(keyUsername)
	if !ok || len(data) == 0 {
		return "", model.ErrUsernameNotFound
	}
	return string(data), nil
}

// Provider configuration operations

func (s *Storage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	keys, err := json.Marshal(settings.Keys)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[keyProvider] = []byte(settings.Provider)
	s.data[keyAPIKeys] = keys
	return nil
}

func (s *Storage) GetSettings(ctx context.Context) (*model.Settings, error) {
	provider, hasProvider := s.get(keyProvider)
	keysData, hasKeys := s.get(keyAPIKeys)
	if !hasProvider && !hasKeys {
		return nil, model.ErrSettingsNotFound
	}

	settings := model.DefaultSettings()
	if hasProvider && model.Provider(provider).Valid() {
		settings.Provider = model.Provider(provider)
	}
	if hasKeys {
		var keys model.APIKeys
		if err := json.Unmarshal(keysData, &keys); err == nil {
			settings.Keys = keys
		}
	}
	return settings, nil
}
