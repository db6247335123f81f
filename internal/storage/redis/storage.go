package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) setJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, 0).Err()
}

// Current word operations

func (s *Storage) SaveCurrentWord(ctx context.Context, word *model.DailyWord) error {
	return s.setJSON(ctx, currentWordKey(), word)
}

func (s *Storage) GetCurrentWord(ctx context.Context) (*model.DailyWord, error) {
	data, err := s.client.Get(ctx, currentWordKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordNotFound
		}
		return nil, err
	}

	var word model.DailyWord
	if err := json.Unmarshal(data, &word); err != nil {
		// Corrupt data degrades to "no data found"
		return nil, model.ErrWordNotFound
	}
	return &word, nil
}

func (s *Storage) ClearCurrentWord(ctx context.Context) error {
	return s.client.Del(ctx, currentWordKey()).Err()
}

// Submission operations

func (s *Storage) SaveSubmissions(ctx context.Context, subs []model.Submission) error {
	if subs == nil {
		subs = []model.Submission{}
	}
	return s.setJSON(ctx, submissionsKey(), subs)
}

func (s *Storage) GetSubmissions(ctx context.Context) ([]model.Submission, error) {
	data, err := s.client.Get(ctx, submissionsKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
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
	return s.setJSON(ctx, archiveKey(), archive)
}

func (s *Storage) GetArchive(ctx context.Context) ([]model.ArchivedWord, error) {
	data, err := s.client.Get(ctx, archiveKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var archive []model.ArchivedWord
	if err := json.Unmarshal(data, &archive); err != nil {
		return nil, nil
	}
	return archive, nil
}

// Session identity operations

func (s *Storage) SaveUsername(ctx context.Context, name string) error {
	return s.client.Set(ctx, usernameKey(), name, 0).Err()
}

func (s *Storage) GetUsername(ctx context.Context) (string, error) {
	name, err := s.client.Get(ctx, usernameKey()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrUsernameNotFound
		}
		return "", err
	}
	if name == "" {
		return "", model.ErrUsernameNotFound
	}
	return name, nil
}

// Provider configuration operations

func (s *Storage) SaveSettings(ctx context.Context, settings *model.Settings) error {
	keys, err := json.Marshal(settings.Keys)
	if err != nil {
		return err
	}

	// Pipeline the two keys; the store offers no cross-key transaction
	// guarantee and none is required
	pipe := s.client.Pipeline()
	pipe.Set(ctx, providerKey(), string(settings.Provider), 0)
	pipe.Set(ctx, apiKeysKey(), keys, 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSettings(ctx context.Context) (*model.Settings, error) {
	provider, providerErr := s.client.Get(ctx, providerKey()).Result()
	if providerErr != nil && !errors.Is(providerErr, redis.Nil) {
		return nil, providerErr
	}
	keysData, keysErr := s.client.Get(ctx, apiKeysKey()).Bytes()
	if keysErr != nil && !errors.Is(keysErr, redis.Nil) {
		return nil, keysErr
	}

	if errors.Is(providerErr, redis.Nil) && errors.Is(keysErr, redis.Nil) {
		return nil, model.ErrSettingsNotFound
	}

	settings := model.DefaultSettings()
	if providerErr == nil && model.Provider(provider).Valid() {
		settings.Provider = model.Provider(provider)
	}
	if keysErr == nil {
		var keys model.APIKeys
		if err := json.Unmarshal(keysData, &keys); err == nil {
			settings.Keys = keys
		}
	}
	return settings, nil
}
