package mocks

import (
	"context"

	"github.com/whimword/whimword/internal/ai"
	"github.com/whimword/whimword/internal/model"
)

// MockGateway is a mock implementation of the AI gateway for testing.
// Results are queued per operation; a set error takes precedence over
// queued results.
type MockGateway struct {
	WordResults []string
	WordErr     error
	wordIndex   int

	ImageResults []string
	ImageErr     error
	imageIndex   int

	SummaryResults [][]string
	SummaryErr     error
	summaryIndex   int

	// Call records
	WordCalls       int
	ImagePrompts    []string
	SummaryCalls    int
	LastSummaryWord string
	LastSummarySubs []model.Submission
}

// Ensure MockGateway implements the gateway
var _ ai.Gateway = (*MockGateway)(nil)

// NewMockGateway creates a new MockGateway
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// GenerateWord returns the next queued word
func (g *MockGateway) GenerateWord(ctx context.Context) (string, error) {
	g.WordCalls++
	if g.WordErr != nil {
		return "", g.WordErr
	}
	if g.wordIndex >= len(g.WordResults) {
		return "mockword", nil
	}
	word := g.WordResults[g.wordIndex]
	g.wordIndex++
	return word, nil
}

// GenerateImage returns the next queued image payload
func (g *MockGateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	g.ImagePrompts = append(g.ImagePrompts, prompt)
	if g.ImageErr != nil {
		return "", g.ImageErr
	}
	if g.imageIndex >= len(g.ImageResults) {
		return "bW9ja2ltYWdl", nil
	}
	image := g.ImageResults[g.imageIndex]
	g.imageIndex++
	return image, nil
}

// SummarizeDefinitions returns the next queued summary
func (g *MockGateway) SummarizeDefinitions(ctx context.Context, word string, subs []model.Submission) ([]string, error) {
	g.SummaryCalls++
	g.LastSummaryWord = word
	g.LastSummarySubs = subs
	if g.SummaryErr != nil {
		return nil, g.SummaryErr
	}
	if g.summaryIndex >= len(g.SummaryResults) {
		return []string{"first", "second", "third"}, nil
	}
	summary := g.SummaryResults[g.summaryIndex]
	g.summaryIndex++
	return summary, nil
}

// QueueWord adds words to the GenerateWord result queue
func (g *MockGateway) QueueWord(words ...string) {
	g.WordResults = append(g.WordResults, words...)
}

// QueueImage adds payloads to the GenerateImage result queue
func (g *MockGateway) QueueImage(images ...string) {
	g.ImageResults = append(g.ImageResults, images...)
}

// QueueSummary adds results to the SummarizeDefinitions queue
func (g *MockGateway) QueueSummary(summaries ...[]string) {
	g.SummaryResults = append(g.SummaryResults, summaries...)
}
