package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/whimword/whimword/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// corrupt plants unparseable bytes under a store key
func (s *StorageSuite) corrupt(key string) {
	s.storage.mu.Lock()
	defer s.storage.mu.Unlock()
	s.storage.data[key] = []byte("{not json")
}

// Current word tests

func (s *StorageSuite) TestSaveAndGetCurrentWord() {
	word := &model.DailyWord{Word: "snorfle", Image: "aW1n", Date: "2026-03-14"}

	err := s.storage.SaveCurrentWord(s.ctx, word)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCurrentWord(s.ctx)
	s.Require().NoError(err)
	s.Equal(word, retrieved)
}

func (s *StorageSuite) TestGetCurrentWordAbsent() {
	_, err := s.storage.GetCurrentWord(s.ctx)
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *StorageSuite) TestGetCurrentWordCorruptTreatedAsAbsent() {
	s.corrupt(keyCurrentWord)

	_, err := s.storage.GetCurrentWord(s.ctx)
	s.ErrorIs(err, model.ErrWordNotFound)
}

func (s *StorageSuite) TestClearCurrentWord() {
	word := &model.DailyWord{Word: "snorfle", Date: "2026-03-14"}
	s.Require().NoError(s.storage.SaveCurrentWord(s.ctx, word))

	s.Require().NoError(s.storage.ClearCurrentWord(s.ctx))

	_, err := s.storage.GetCurrentWord(s.ctx)
	s.ErrorIs(err, model.ErrWordNotFound)
}

// Submission tests

func (s *StorageSuite) TestSaveAndGetSubmissionsPreservesOrder() {
	subs := []model.Submission{
		{ID: "a", Text: "first", Username: "Alice", WordDate: "2026-03-14"},
		{ID: "b", Text: "second", Username: "Bob", Likes: 2, WordDate: "2026-03-14"},
	}

	err := s.storage.SaveSubmissions(s.ctx, subs)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Equal(subs, retrieved)
}

func (s *StorageSuite) TestGetSubmissionsAbsentIsEmpty() {
	subs, err := s.storage.GetSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Empty(subs)
}

func (s *StorageSuite) TestGetSubmissionsCorruptTreatedAsEmpty() {
	s.corrupt(keySubmissions)

	subs, err := s.storage.GetSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Empty(subs)
}

func (s *StorageSuite) TestSaveSubmissionsNilClearsList() {
	subs := []model.Submission{{ID: "a", Text: "first"}}
	s.Require().NoError(s.storage.SaveSubmissions(s.ctx, subs))

	s.Require().NoError(s.storage.SaveSubmissions(s.ctx, nil))

	retrieved, err := s.storage.GetSubmissions(s.ctx)
	s.Require().NoError(err)
	s.Empty(retrieved)
}

// Archive tests

func (s *StorageSuite) TestSaveAndGetArchive() {
	archive := []model.ArchivedWord{
		{
			DailyWord:          model.DailyWord{Word: "blinket", Date: "2026-03-14"},
			WinningDefinitions: []string{"one", "two", "three"},
		},
		{
			DailyWord:          model.DailyWord{Word: "snorfle", Date: "2026-03-13"},
			WinningDefinitions: []string{"No definitions were submitted for this word."},
		},
	}

	err := s.storage.SaveArchive(s.ctx, archive)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetArchive(s.ctx)
	s.Require().NoError(err)
	s.Equal(archive, retrieved)
}

func (s *StorageSuite) TestGetArchiveCorruptTreatedAsEmpty() {
	s.corrupt(keyArchive)

	archive, err := s.storage.GetArchive(s.ctx)
	s.Require().NoError(err)
	s.Empty(archive)
}

// Session identity tests

func (s *StorageSuite) TestSaveAndGetUsername() {
	err := s.storage.SaveUsername(s.ctx, "Word Nerd")
	s.Require().NoError(err)

	name, err := s.storage.GetUsername(s.ctx)
	s.Require().NoError(err)
	s.Equal("Word Nerd", name)
}

func (s *StorageSuite) TestGetUsernameAbsent() {
	_, err := s.storage.GetUsername(s.ctx)
	s.ErrorIs(err, model.ErrUsernameNotFound)
}

// Provider configuration tests

func (s *StorageSuite) TestSaveAndGetSettings() {
	settings := &model.Settings{
		Provider: model.ProviderOpenAI,
		Keys:     model.APIKeys{Gemini: "g-key", OpenAI: "o-key"},
	}

	err := s.storage.SaveSettings(s.ctx, settings)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(settings, retrieved)
}

func (s *StorageSuite) TestGetSettingsAbsent() {
	_, err := s.storage.GetSettings(s.ctx)
	s.ErrorIs(err, model.ErrSettingsNotFound)
}

func (s *StorageSuite) TestGetSettingsInvalidProviderFallsBackToDefault() {
	s.Require().NoError(s.storage.SaveSettings(s.ctx, &model.Settings{
		Provider: model.ProviderOpenAI,
		Keys:     model.APIKeys{OpenAI: "o-key"},
	}))
	s.storage.mu.Lock()
	s.storage.data[keyProvider] = []byte("llama-at-home")
	s.storage.mu.Unlock()

	retrieved, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderGemini, retrieved.Provider)
	s.Equal("o-key", retrieved.Keys.OpenAI)
}

func (s *StorageSuite) TestGetSettingsCorruptKeysIgnored() {
	s.Require().NoError(s.storage.SaveSettings(s.ctx, &model.Settings{
		Provider: model.ProviderOpenAI,
	}))
	s.corrupt(keyAPIKeys)

	retrieved, err := s.storage.GetSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderOpenAI, retrieved.Provider)
	s.Empty(retrieved.Keys.Gemini)
	s.Empty(retrieved.Keys.OpenAI)
}
