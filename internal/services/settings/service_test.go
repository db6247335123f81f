package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/whimword/whimword/internal/model"
	"github.com/whimword/whimword/internal/storage/memory"
	"github.com/whimword/whimword/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestGetDefaultsWhenAbsent() {
	settings, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderGemini, settings.Provider)
	s.Empty(settings.ActiveKey())
}

func (s *ServiceSuite) TestSaveRoundTrips() {
	notice, err := s.service.Save(s.ctx, &model.Settings{
		Provider: model.ProviderOpenAI,
		Keys:     model.APIKeys{OpenAI: "sk-test"},
	})
	s.Require().NoError(err)
	s.Empty(notice)

	settings, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderOpenAI, settings.Provider)
	s.Equal("sk-test", settings.ActiveKey())
}

func (s *ServiceSuite) TestSaveWarnsOnMissingActiveKey() {
	notice, err := s.service.Save(s.ctx, &model.Settings{
		Provider: model.ProviderGemini,
		Keys:     model.APIKeys{OpenAI: "sk-test"},
	})
	s.Require().NoError(err)
	s.Equal("Warning: API key for the selected provider is missing.", notice)

	// Saved despite the warning
	settings, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderGemini, settings.Provider)
	s.Equal("sk-test", settings.Keys.OpenAI)
}

func (s *ServiceSuite) TestSaveRejectsUnknownProvider() {
	_, err := s.service.Save(s.ctx, &model.Settings{Provider: "llama-at-home"})
	s.ErrorIs(err, model.ErrUnknownProvider)
}

func (s *ServiceSuite) TestSeedOnlyWhenAbsent() {
	err := s.service.Seed(s.ctx, &model.Settings{
		Provider: model.ProviderGemini,
		Keys:     model.APIKeys{Gemini: "env-key"},
	})
	s.Require().NoError(err)

	// A second seed must not clobber existing configuration
	err = s.service.Seed(s.ctx, &model.Settings{
		Provider: model.ProviderOpenAI,
		Keys:     model.APIKeys{OpenAI: "other"},
	})
	s.Require().NoError(err)

	settings, err := s.service.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.ProviderGemini, settings.Provider)
	s.Equal("env-key", settings.Keys.Gemini)
}
