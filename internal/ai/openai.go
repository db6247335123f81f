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

const defaultOpenAIBaseURL = "https://api.openai.com/v1"

const (
	openAITextModel  = "gpt-4o-mini"
	openAIImageModel = "dall-e-3"
)

// OpenAI is the OpenAI implementation of the gateway
type OpenAI struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAI creates an OpenAI gateway with the given credential
func NewOpenAI(apiKey string) *OpenAI {
	return NewOpenAIWithBaseURL(apiKey, defaultOpenAIBaseURL)
}

// NewOpenAIWithBaseURL creates an OpenAI gateway against a custom
// endpoint (for testing)
func NewOpenAIWithBaseURL(apiKey, baseURL string) *OpenAI {
	return &OpenAI{
		apiKey:  apiKey,
		baseURL: baseURL,
		// No timeout: a hung call stalls only the in-flight operation
		httpClient: &http.Client{},
	}
}

// Ensure OpenAI implements the gateway
var _ Gateway = (*OpenAI)(nil)

// Wire types

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChatRequest struct {
	Model          string          `json:"model"`
	Messages       []openAIMessage `json:"messages"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format,omitempty"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type openAIImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type openAIImageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenAI) post(ctx context.Context, op, path string, reqBody, result any) error {
	body, err := json.Marshal(reqBody)
	if err != nil {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: err}
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op,
			Err: fmt.Errorf("unparseable response (HTTP %d)", resp.StatusCode)}
	}

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Provider: model.ProviderOpenAI, Op: op,
			Err: errors.New(responseErrorMessage(result, resp.StatusCode))}
	}
	return nil
}

func responseErrorMessage(result any, status int) string {
	switch r := result.(type) {
	case *openAIChatResponse:
		if r.Error != nil && r.Error.Message != "" {
			return r.Error.Message
		}
	case *openAIImageResponse:
		if r.Error != nil && r.Error.Message != "" {
			return r.Error.Message
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

// GenerateWord asks the chat model for a nonsense word
func (o *OpenAI) GenerateWord(ctx context.Context) (string, error) {
	const op = "generate-word"

	var resp openAIChatResponse
	err := o.post(ctx, op, "/chat/completions", openAIChatRequest{
		Model:     openAITextModel,
		Messages:  []openAIMessage{{Role: "user", Content: wordPrompt}},
		MaxTokens: 10,
	}, &resp)
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: errors.New("no choices in response")}
	}
	word := sanitizeWord(resp.Choices[0].Message.Content)
	if word == "" {
		return "", &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: errors.New("empty word in response")}
	}
	return word, nil
}

// GenerateImage asks dall-e-3 for an abstract illustration
func (o *OpenAI) GenerateImage(ctx context.Context, prompt string) (string, error) {
	const op = "generate-image"

	var resp openAIImageResponse
	err := o.post(ctx, op, "/images/generations", openAIImageRequest{
		Model:          openAIImageModel,
		Prompt:         imagePrompt(prompt),
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}, &resp)
	if err != nil {
		return "", err
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return "", &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: errors.New("no image data in response")}
	}
	return resp.Data[0].B64JSON, nil
}

// SummarizeDefinitions asks for the top three definitions in JSON mode
func (o *OpenAI) SummarizeDefinitions(ctx context.Context, word string, subs []model.Submission) ([]string, error) {
	const op = "summarize-definitions"

	req := openAIChatRequest{
		Model:    openAITextModel,
		Messages: []openAIMessage{{Role: "user", Content: summaryPrompt(word, subs)}},
	}
	req.ResponseFormat = &struct {
		Type string `json:"type"`
	}{Type: "json_object"}

	var resp openAIChatResponse
	if err := o.post(ctx, op, "/chat/completions", req, &resp); err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: errors.New("no choices in response")}
	}

	var result summaryResult
	if err := json.Unmarshal([]byte(cleanJSONContent(resp.Choices[0].Message.Content)), &result); err != nil {
		return nil, &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: err}
	}
	if len(result.TopDefinitions) == 0 {
		return nil, &ProviderError{Provider: model.ProviderOpenAI, Op: op, Err: errors.New("no definitions in response")}
	}
	return clampDefinitions(result.TopDefinitions), nil
}
