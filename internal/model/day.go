package model

// Phase is the top-level state of the day lifecycle
type Phase string

const (
	// PhaseHasWord means a current word exists and accepts submissions
	PhaseHasWord Phase = "has_word"
	// PhaseNoWord means word generation was blocked (missing credential)
	// and no word is current
	PhaseNoWord Phase = "no_word"
)

// DaySnapshot is a read-only view of the day state machine. Mutations
// go through the day controller; readers only ever see snapshots.
type DaySnapshot struct {
	Phase       Phase
	Word        *DailyWord
	Submissions []Submission
	// PreviousDayResults is the most recently archived word, held for
	// one-time display until dismissed.
	PreviousDayResults *ArchivedWord
	Summarizing        bool
	RegeneratingImage  bool
}
