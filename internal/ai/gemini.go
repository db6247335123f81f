package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/whimword/whimword/internal/model"
)

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

const (
	geminiTextModel    = "gemini-2.5-flash"
	geminiImageModel   = "gemini-2.5-flash-image"
	geminiSummaryModel = "gemini-2.0-flash"
)

// Gemini is the Google Gemini implementation of the gateway
type Gemini struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGemini creates a Gemini gateway with the given credential
func NewGemini(apiKey string) *Gemini {
	return NewGeminiWithBaseURL(apiKey, defaultGeminiBaseURL)
}

// NewGeminiWithBaseURL creates a Gemini gateway against a custom
// endpoint (for testing)
func NewGeminiWithBaseURL(apiKey, baseURL string) *Gemini {
	return &Gemini{
		apiKey:  apiKey,
		baseURL: baseURL,
		// No timeout: a hung call stalls only the in-flight operation
		httpClient: &http.Client{},
	}
}

// Ensure Gemini implements the gateway
var _ Gateway = (*Gemini)(nil)

// Wire types for the generateContent endpoint

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	ResponseModalities []string        `json:"responseModalities,omitempty"`
	ResponseMimeType   string          `json:"responseMimeType,omitempty"`
	ResponseSchema     json.RawMessage `json:"responseSchema,omitempty"`
}

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// summarySchema constrains the summarization response to the expected
// JSON shape
var summarySchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"top_definitions": {"type": "ARRAY", "items": {"type": "STRING"}}
	}
}`)

func (g *Gemini) generateContent(ctx context.Context, op, mmodel string, req geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: err}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, mmodel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: err}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op,
			Err: fmt.Errorf("unparseable response (HTTP %d)", resp.StatusCode)}
	}

	if resp.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("HTTP %d", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: errors.New(msg)}
	}

	if len(parsed.Candidates) == 0 {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: errors.New("no candidates in response")}
	}

	return &parsed, nil
}

// firstText returns the first text part of the first candidate
func (r *geminiResponse) firstText() string {
	for _, part := range r.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text
		}
	}
	return ""
}

// GenerateWord asks the text model for a nonsense word
func (g *Gemini) GenerateWord(ctx context.Context) (string, error) {
	const op = "generate-word"

	resp, err := g.generateContent(ctx, op, geminiTextModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: wordPrompt}}}},
	})
	if err != nil {
		return "", err
	}

	word := sanitizeWord(resp.firstText())
	if word == "" {
		return "", &ProviderError{Provider: model.ProviderGemini, Op: op, Err: errors.New("empty word in response")}
	}
	return word, nil
}

// GenerateImage asks the image model for an abstract illustration
func (g *Gemini) GenerateImage(ctx context.Context, prompt string) (string, error) {
	const op = "generate-image"

	resp, err := g.generateContent(ctx, op, geminiImageModel, geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: imagePrompt(prompt)}}}},
		GenerationConfig: &geminiGenerationConfig{ResponseModalities: []string{"IMAGE"}},
	})
	if err != nil {
		return "", err
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return part.InlineData.Data, nil
		}
	}
	return "", &ProviderError{Provider: model.ProviderGemini, Op: op, Err: errors.New("no image data in response")}
}

// SummarizeDefinitions asks for the top three definitions as JSON
func (g *Gemini) SummarizeDefinitions(ctx context.Context, word string, subs []model.Submission) ([]string, error) {
	const op = "summarize-definitions"

	resp, err := g.generateContent(ctx, op, geminiSummaryModel, geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: summaryPrompt(word, subs)}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   summarySchema,
		},
	})
	if err != nil {
		return nil, err
	}

	var result summaryResult
	if err := json.Unmarshal([]byte(cleanJSONContent(resp.firstText())), &result); err != nil {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: err}
	}
	if len(result.TopDefinitions) == 0 {
		return nil, &ProviderError{Provider: model.ProviderGemini, Op: op, Err: errors.New("no definitions in response")}
	}
	return clampDefinitions(result.TopDefinitions), nil
}
