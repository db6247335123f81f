package model

// DateFormat is the layout for calendar-date strings, matching the
// store's date encoding (client-local, not timezone-normalized).
const DateFormat = "2006-01-02"

// DailyWord is the invented word published for a single calendar day.
// At most one DailyWord is current at any instant. Once created it is
// immutable except for image replacement.
type DailyWord struct {
	Word string `json:"word"`
	// Image is a base64-encoded illustration. Empty when generation
	// failed or has not happened yet.
	Image string `json:"image,omitempty"`
	// Date is the calendar date (YYYY-MM-DD) on which the word became
	// current.
	Date string `json:"date"`
}

// ArchivedWord is a finalized DailyWord with its synthesized winning
// definitions. Entries are never mutated after creation; the archive
// only grows, newest first.
type ArchivedWord struct {
	DailyWord
	// WinningDefinitions holds three synthesized definitions, or a
	// single explanatory string when the day had no submissions.
	WinningDefinitions []string `json:"winningDefinitions"`
}
