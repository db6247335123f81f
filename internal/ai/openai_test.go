package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/whimword/whimword/internal/model"
)

type OpenAISuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	requests []*http.Request
	rawBody  []byte
	client   *OpenAI
	ctx      context.Context
}

func TestOpenAISuite(t *testing.T) {
	suite.Run(t, new(OpenAISuite))
}

func (s *OpenAISuite) SetupTest() {
	s.requests = nil
	s.rawBody = nil
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r)
		s.rawBody, _ = io.ReadAll(r.Body)
		s.handler(w, r)
	}))
	s.client = NewOpenAIWithBaseURL("sk-test", s.server.URL)
	s.ctx = context.Background()
}

func (s *OpenAISuite) TearDownTest() {
	s.server.Close()
}

// respondChat serves a single chat completion choice
func (s *OpenAISuite) respondChat(content string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}
}

func (s *OpenAISuite) TestGenerateWordSanitizesResponse() {
	s.respondChat("\"Blinket.\"")

	word, err := s.client.GenerateWord(s.ctx)
	s.Require().NoError(err)
	s.Equal("Blinket", word)
}

func (s *OpenAISuite) TestGenerateWordUsesChatEndpointAndBearerAuth() {
	s.respondChat("Blinket")

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(s.requests, 1)
	s.Equal("/chat/completions", s.requests[0].URL.Path)
	s.Equal("Bearer sk-test", s.requests[0].Header.Get("Authorization"))

	var body openAIChatRequest
	s.Require().NoError(json.Unmarshal(s.rawBody, &body))
	s.Equal("gpt-4o-mini", body.Model)
}

func (s *OpenAISuite) TestGenerateWordNoChoicesFails() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().Error(err)

	var provErr *ProviderError
	s.Require().ErrorAs(err, &provErr)
	s.Equal(model.ProviderOpenAI, provErr.Provider)
}

func (s *OpenAISuite) TestUpstreamErrorSurfacesMessage() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "Incorrect API key provided"},
		})
	}

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "Incorrect API key provided")
}

func (s *OpenAISuite) TestGenerateImageReturnsBase64Payload() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"b64_json": "aW1n"}},
		})
	}

	image, err := s.client.GenerateImage(s.ctx, "blinket")
	s.Require().NoError(err)
	s.Equal("aW1n", image)

	s.Require().Len(s.requests, 1)
	s.Equal("/images/generations", s.requests[0].URL.Path)

	var body openAIImageRequest
	s.Require().NoError(json.Unmarshal(s.rawBody, &body))
	s.Equal("dall-e-3", body.Model)
	s.Equal("b64_json", body.ResponseFormat)
	s.Contains(body.Prompt, "blinket")
}

func (s *OpenAISuite) TestSummarizeDefinitionsUsesJSONMode() {
	s.respondChat(`{"top_definitions": ["one", "two", "three"]}`)

	defs, err := s.client.SummarizeDefinitions(s.ctx, "blinket", []model.Submission{
		{Text: "a shy spark", Likes: 5},
	})
	s.Require().NoError(err)
	s.Equal([]string{"one", "two", "three"}, defs)

	var body openAIChatRequest
	s.Require().NoError(json.Unmarshal(s.rawBody, &body))
	s.Require().NotNil(body.ResponseFormat)
	s.Equal("json_object", body.ResponseFormat.Type)
}

func (s *OpenAISuite) TestSummarizeDefinitionsBadJSONFails() {
	s.respondChat("definitely not json")

	_, err := s.client.SummarizeDefinitions(s.ctx, "blinket", []model.Submission{{Text: "x"}})
	s.Require().Error(err)
}

// Gateway selection tests

func (s *OpenAISuite) TestNewSelectsProviderFromSettings() {
	gw, err := New(model.Settings{
		Provider: model.ProviderOpenAI,
		Keys:     model.APIKeys{OpenAI: "sk-test"},
	})
	s.Require().NoError(err)
	s.IsType(&OpenAI{}, gw)

	gw, err = New(model.Settings{
		Provider: model.ProviderGemini,
		Keys:     model.APIKeys{Gemini: "g-key"},
	})
	s.Require().NoError(err)
	s.IsType(&Gemini{}, gw)
}

func (s *OpenAISuite) TestNewFailsWithoutCredential() {
	_, err := New(model.Settings{Provider: model.ProviderOpenAI})
	s.ErrorIs(err, ErrMissingAPIKey)
}

func (s *OpenAISuite) TestNewFailsOnUnknownProvider() {
	_, err := New(model.Settings{Provider: "llama-at-home"})
	s.ErrorIs(err, model.ErrUnknownProvider)
}
