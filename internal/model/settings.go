package model

// Provider identifies a generative AI backend
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
)

// Valid returns true if the provider is a known backend
func (p Provider) Valid() bool {
	return p == ProviderGemini || p == ProviderOpenAI
}

// APIKeys holds one credential per provider
type APIKeys struct {
	Gemini string `json:"gemini"`
	OpenAI string `json:"openai"`
}

// Settings is the persisted provider configuration consumed by the AI
// gateway
type Settings struct {
	Provider Provider
	Keys     APIKeys
}

// KeyFor returns the credential for the given provider
func (s Settings) KeyFor(p Provider) string {
	if p == ProviderOpenAI {
		return s.Keys.OpenAI
	}
	return s.Keys.Gemini
}

// ActiveKey returns the credential for the selected provider
func (s Settings) ActiveKey() string {
	return s.KeyFor(s.Provider)
}

// DefaultSettings returns the configuration used before any has been
// saved
func DefaultSettings() *Settings {
	return &Settings{Provider: ProviderGemini}
}
