package request

// SubmitDefinitionRequest is the request body for submitting a definition
type SubmitDefinitionRequest struct {
	Text string `json:"text"`
}

// UpdateUsernameRequest is the request body for changing the display name
type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

// SetWordRequest is the request body for manually overriding the word
type SetWordRequest struct {
	Word string `json:"word"`
}

// UpdateSettingsRequest is the request body for provider configuration.
// Omitted keys leave the stored credentials untouched.
type UpdateSettingsRequest struct {
	Provider  string  `json:"provider"`
	GeminiKey *string `json:"gemini_key,omitempty"`
	OpenAIKey *string `json:"openai_key,omitempty"`
}
