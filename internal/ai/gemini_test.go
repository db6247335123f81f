package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/whimword/whimword/internal/model"
)

type GeminiSuite struct {
	suite.Suite
	server   *httptest.Server
	handler  http.HandlerFunc
	requests []*http.Request
	bodies   []geminiRequest
	client   *Gemini
	ctx      context.Context
}

func TestGeminiSuite(t *testing.T) {
	suite.Run(t, new(GeminiSuite))
}

func (s *GeminiSuite) SetupTest() {
	s.requests = nil
	s.bodies = nil
	s.handler = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests = append(s.requests, r)
		var body geminiRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		s.bodies = append(s.bodies, body)
		s.handler(w, r)
	}))
	s.client = NewGeminiWithBaseURL("test-key", s.server.URL)
	s.ctx = context.Background()
}

func (s *GeminiSuite) TearDownTest() {
	s.server.Close()
}

// respondText serves a single text candidate
func (s *GeminiSuite) respondText(text string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": text}}}},
			},
		})
	}
}

func (s *GeminiSuite) TestGenerateWordSanitizesResponse() {
	s.respondText("  \"Snorfle!\"\n")

	word, err := s.client.GenerateWord(s.ctx)
	s.Require().NoError(err)
	s.Equal("Snorfle", word)
}

func (s *GeminiSuite) TestGenerateWordUsesTextModelAndKeyHeader() {
	s.respondText("Snorfle")

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(s.requests, 1)
	s.Equal("/models/gemini-2.5-flash:generateContent", s.requests[0].URL.Path)
	s.Equal("test-key", s.requests[0].Header.Get("x-goog-api-key"))
}

func (s *GeminiSuite) TestGenerateWordEmptyResponseFails() {
	s.respondText("123 !!!")

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().Error(err)

	var provErr *ProviderError
	s.Require().ErrorAs(err, &provErr)
	s.Equal(model.ProviderGemini, provErr.Provider)
}

func (s *GeminiSuite) TestGenerateWordUpstreamErrorSurfacesMessage() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "API key not valid"},
		})
	}

	_, err := s.client.GenerateWord(s.ctx)
	s.Require().Error(err)
	s.Contains(err.Error(), "API key not valid")
}

func (s *GeminiSuite) TestGenerateImageReturnsInlineData() {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "image/png", "data": "aW1n"}},
				}}},
			},
		})
	}

	image, err := s.client.GenerateImage(s.ctx, "snorfle")
	s.Require().NoError(err)
	s.Equal("aW1n", image)

	s.Require().Len(s.requests, 1)
	s.Equal("/models/gemini-2.5-flash-image:generateContent", s.requests[0].URL.Path)
	s.Require().NotNil(s.bodies[0].GenerationConfig)
	s.Equal([]string{"IMAGE"}, s.bodies[0].GenerationConfig.ResponseModalities)
	s.Contains(s.bodies[0].Contents[0].Parts[0].Text, "snorfle")
}

func (s *GeminiSuite) TestGenerateImageNoDataFails() {
	s.respondText("sorry, text only")

	_, err := s.client.GenerateImage(s.ctx, "snorfle")
	s.Require().Error(err)
}

func (s *GeminiSuite) TestSummarizeDefinitionsParsesJSON() {
	s.respondText(`{"top_definitions": ["one", "two", "three"]}`)

	defs, err := s.client.SummarizeDefinitions(s.ctx, "snorfle", []model.Submission{
		{Text: "a tiny sneeze", Likes: 3},
	})
	s.Require().NoError(err)
	s.Equal([]string{"one", "two", "three"}, defs)

	s.Require().Len(s.requests, 1)
	s.Equal("/models/gemini-2.0-flash:generateContent", s.requests[0].URL.Path)
	s.Require().NotNil(s.bodies[0].GenerationConfig)
	s.Equal("application/json", s.bodies[0].GenerationConfig.ResponseMimeType)
}

func (s *GeminiSuite) TestSummarizeDefinitionsStripsCodeFences() {
	s.respondText("```json\n{\"top_definitions\": [\"one\", \"two\", \"three\"]}\n```")

	defs, err := s.client.SummarizeDefinitions(s.ctx, "snorfle", []model.Submission{{Text: "x"}})
	s.Require().NoError(err)
	s.Equal([]string{"one", "two", "three"}, defs)
}

func (s *GeminiSuite) TestSummarizeDefinitionsClampsToThree() {
	s.respondText(`{"top_definitions": ["one", "two", "three", "four"]}`)

	defs, err := s.client.SummarizeDefinitions(s.ctx, "snorfle", []model.Submission{{Text: "x"}})
	s.Require().NoError(err)
	s.Len(defs, 3)
}

func (s *GeminiSuite) TestSummarizeGuardShortCircuitsEmptyList() {
	// The server must never be reached
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		s.FailNow("unexpected provider call")
	}

	defs, err := Summarize(s.ctx, s.client, "snorfle", nil)
	s.Require().NoError(err)
	s.Equal([]string{"No definitions were submitted."}, defs)
}
