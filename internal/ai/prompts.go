package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/whimword/whimword/internal/model"
)

// Prompts are shared between providers; only the wire formats differ.

const wordPrompt = "Generate one single, unique, and fictional but pronounceable word " +
	"that has no real-world meaning. The word should be between 6 and 12 letters long. " +
	"Return only the word itself, with no explanation, punctuation, or formatting."

func imagePrompt(word string) string {
	return fmt.Sprintf("A dreamy, ethereal, abstract digital painting representing the concept of '%s'. "+
		"Soft pastel color palette, gentle gradients, sense of light and wonder, beautiful.", word)
}

func summaryPrompt(word string, subs []model.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI that analyzes creative definitions for a made-up word. "+
		"The word is %q. Below is a list of user-submitted definitions with upvote counts. "+
		"Identify the top 3 most compelling, creative, or commonly recurring themes, "+
		"considering submissions with more likes as more popular. "+
		"Synthesize these into three concise, distinct definitions. "+
		"Return a JSON object with a single key \"top_definitions\" holding an array of 3 strings.\n"+
		"Submissions:\n", word)
	for _, s := range subs {
		fmt.Fprintf(&b, "- %q (Likes: %d)\n", s.Text, s.Likes)
	}
	return b.String()
}

// sanitizeWord strips everything that is not an ASCII letter. Providers
// occasionally wrap the word in quotes or trailing punctuation.
func sanitizeWord(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NoSubmissionsSummary is the result of summarizing an empty submission
// list. Summarize returns it without invoking the provider.
var NoSubmissionsSummary = []string{"No definitions were submitted."}

// Summarize wraps Gateway.SummarizeDefinitions with the empty-list
// guard: zero submissions never reach the provider.
func Summarize(ctx context.Context, gw Gateway, word string, subs []model.Submission) ([]string, error) {
	if len(subs) == 0 {
		return NoSubmissionsSummary, nil
	}
	return gw.SummarizeDefinitions(ctx, word, subs)
}

// summaryResult is the JSON shape both providers are asked to return
type summaryResult struct {
	TopDefinitions []string `json:"top_definitions"`
}

// clampDefinitions enforces the three-definition contract
func clampDefinitions(defs []string) []string {
	if len(defs) > 3 {
		return defs[:3]
	}
	return defs
}

// cleanJSONContent strips markdown code fences some models wrap around
// JSON output
func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
