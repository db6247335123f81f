package response

import (
	"sort"

	"github.com/samber/lo"

	"github.com/whimword/whimword/internal/model"
)

// Word represents the daily word in API responses
type Word struct {
	Word  string `json:"word"`
	Image string `json:"image,omitempty"`
	Date  string `json:"date"`
}

// WordFromModel converts a model.DailyWord
func WordFromModel(w *model.DailyWord) Word {
	return Word{
		Word:  w.Word,
		Image: w.Image,
		Date:  w.Date,
	}
}

// Submission represents a submitted definition
type Submission struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Username string `json:"username"`
	Likes    int    `json:"likes"`
	WordDate string `json:"word_date"`
}

// SubmissionFromModel converts a model.Submission
func SubmissionFromModel(s model.Submission) Submission {
	return Submission{
		ID:       s.ID,
		Text:     s.Text,
		Username: s.Username,
		Likes:    s.Likes,
		WordDate: s.WordDate,
	}
}

// RankedSubmissions converts and orders submissions by like count,
// highest first. The sort is stable so equal counts keep submission
// order.
func RankedSubmissions(subs []model.Submission) []Submission {
	ranked := lo.Map(subs, func(s model.Submission, _ int) Submission {
		return SubmissionFromModel(s)
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Likes > ranked[j].Likes
	})
	return ranked
}

// ArchivedWord represents a past word with its winning definitions
type ArchivedWord struct {
	Word               Word     `json:"word"`
	WinningDefinitions []string `json:"winning_definitions"`
}

// ArchivedWordFromModel converts a model.ArchivedWord
func ArchivedWordFromModel(a *model.ArchivedWord) ArchivedWord {
	return ArchivedWord{
		Word:               WordFromModel(&a.DailyWord),
		WinningDefinitions: a.WinningDefinitions,
	}
}

// Today is the full view of the current day
type Today struct {
	Phase              string        `json:"phase"`
	Word               *Word         `json:"word,omitempty"`
	Submissions        []Submission  `json:"submissions"`
	PreviousDayResults *ArchivedWord `json:"previous_day_results,omitempty"`
	Summarizing        bool          `json:"summarizing,omitempty"`
	RegeneratingImage  bool          `json:"regenerating_image,omitempty"`
}

// TodayFromSnapshot converts a model.DaySnapshot
func TodayFromSnapshot(snap *model.DaySnapshot) Today {
	today := Today{
		Phase:             string(snap.Phase),
		Submissions:       RankedSubmissions(snap.Submissions),
		Summarizing:       snap.Summarizing,
		RegeneratingImage: snap.RegeneratingImage,
	}
	if snap.Word != nil {
		w := WordFromModel(snap.Word)
		today.Word = &w
	}
	if snap.PreviousDayResults != nil {
		a := ArchivedWordFromModel(snap.PreviousDayResults)
		today.PreviousDayResults = &a
	}
	return today
}

// Rollover is the response for a completed day transition
type Rollover struct {
	Word     *Word         `json:"word,omitempty"`
	Archived *ArchivedWord `json:"archived,omitempty"`
	Notice   string        `json:"notice,omitempty"`
}

// Username is the response for session identity endpoints
type Username struct {
	Username string `json:"username"`
}

// Settings is the provider configuration view. Credentials are never
// echoed back, only their presence.
type Settings struct {
	Provider     string `json:"provider"`
	HasGeminiKey bool   `json:"has_gemini_key"`
	HasOpenAIKey bool   `json:"has_openai_key"`
	Notice       string `json:"notice,omitempty"`
}

// SettingsFromModel converts model.Settings, redacting credentials
func SettingsFromModel(s *model.Settings, notice string) Settings {
	return Settings{
		Provider:     string(s.Provider),
		HasGeminiKey: s.Keys.Gemini != "",
		HasOpenAIKey: s.Keys.OpenAI != "",
		Notice:       notice,
	}
}
