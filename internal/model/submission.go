package model

// Submission is one player's proposed definition for the current word.
// Submissions never outlive their word: rollover discards them.
type Submission struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Username string `json:"username"`
	Likes    int    `json:"likes"`
	// WordDate ties the submission to the word that was current when it
	// was created. The original relied on clearing order alone; the
	// explicit date lets the relation be asserted.
	WordDate string `json:"wordDate"`
}

// AnonymousUsername is adopted when a player clears their display name.
const AnonymousUsername = "Anonymous"
