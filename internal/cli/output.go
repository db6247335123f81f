package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Today:
		o.printToday(v)
	case Word:
		o.printWord(v)
	case Submission:
		o.printSubmission(v)
	case []ArchivedWord:
		o.printArchive(v)
	case Rollover:
		o.printRollover(v)
	case Username:
		fmt.Printf("Username: %s\n", v.Username)
	case Settings:
		o.printSettings(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Word response type (matches API)
type Word struct {
	Word  string `json:"word"`
	Image string `json:"image,omitempty"`
	Date  string `json:"date"`
}

// Submission response type
type Submission struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Username string `json:"username"`
	Likes    int    `json:"likes"`
	WordDate string `json:"word_date"`
}

// ArchivedWord response type
type ArchivedWord struct {
	Word               Word     `json:"word"`
	WinningDefinitions []string `json:"winning_definitions"`
}

// Today response type
type Today struct {
	Phase              string        `json:"phase"`
	Word               *Word         `json:"word,omitempty"`
	Submissions        []Submission  `json:"submissions"`
	PreviousDayResults *ArchivedWord `json:"previous_day_results,omitempty"`
	Summarizing        bool          `json:"summarizing,omitempty"`
	RegeneratingImage  bool          `json:"regenerating_image,omitempty"`
}

// Rollover response type
type Rollover struct {
	Word     *Word         `json:"word,omitempty"`
	Archived *ArchivedWord `json:"archived,omitempty"`
	Notice   string        `json:"notice,omitempty"`
}

// Username response type
type Username struct {
	Username string `json:"username"`
}

// Settings response type
type Settings struct {
	Provider     string `json:"provider"`
	HasGeminiKey bool   `json:"has_gemini_key"`
	HasOpenAIKey bool   `json:"has_openai_key"`
	Notice       string `json:"notice,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printWord(w Word) {
	fmt.Printf("Word: %s\n", w.Word)
	fmt.Printf("Date: %s\n", w.Date)
	if w.Image != "" {
		fmt.Printf("Image: %d bytes (base64)\n", len(w.Image))
	} else {
		fmt.Println("Image: none")
	}
}

func (o *Output) printSubmission(s Submission) {
	likes := ""
	if s.Likes > 0 {
		likes = fmt.Sprintf(" [%d likes]", s.Likes)
	}
	fmt.Printf("  - %q by %s%s\n", s.Text, s.Username, likes)
}

func (o *Output) printToday(t Today) {
	if t.Word == nil {
		fmt.Println("No word today.")
	} else {
		o.printWord(*t.Word)
	}

	if t.PreviousDayResults != nil {
		fmt.Printf("\nYesterday's word: %s\n", t.PreviousDayResults.Word.Word)
		for _, def := range t.PreviousDayResults.WinningDefinitions {
			fmt.Printf("  * %s\n", def)
		}
	}

	fmt.Printf("\nDefinitions (%d):\n", len(t.Submissions))
	for _, s := range t.Submissions {
		o.printSubmission(s)
	}
}

func (o *Output) printArchive(archive []ArchivedWord) {
	if len(archive) == 0 {
		fmt.Println("The archive is empty.")
		return
	}
	for _, entry := range archive {
		fmt.Printf("%s  %s\n", entry.Word.Date, entry.Word.Word)
		for _, def := range entry.WinningDefinitions {
			fmt.Printf("  * %s\n", def)
		}
	}
}

func (o *Output) printRollover(r Rollover) {
	if r.Archived != nil {
		fmt.Printf("Archived: %s\n", r.Archived.Word.Word)
		for _, def := range r.Archived.WinningDefinitions {
			fmt.Printf("  * %s\n", def)
		}
	}
	if r.Word != nil {
		fmt.Printf("New word: %s\n", r.Word.Word)
	} else {
		fmt.Println("No new word was generated.")
	}
	if r.Notice != "" {
		fmt.Printf("Notice: %s\n", r.Notice)
	}
}

func (o *Output) printSettings(s Settings) {
	fmt.Printf("Provider: %s\n", s.Provider)
	fmt.Printf("Gemini key: %s\n", presence(s.HasGeminiKey))
	fmt.Printf("OpenAI key: %s\n", presence(s.HasOpenAIKey))
	if s.Notice != "" {
		fmt.Printf("Notice: %s\n", s.Notice)
	}
}

func presence(set bool) string {
	if set {
		return "configured"
	}
	return "not set"
}
