package textgen

import (
	"context"
	"errors"
	"os"
)

// ErrUpstream marks failures of the generation service itself, as opposed to
// bad caller input or local normalization problems. Callers surface these
// with a gateway-style status.
var ErrUpstream = errors.New("generation service failure")

// Request is one chat-completion call: a system persona, a user task and the
// sampling parameters the caller derived from the generation mode.
type Request struct {
	System           string
	User             string
	Temperature      float64
	TopP             float64
	PresencePenalty  float64
	FrequencyPenalty float64
	MaxTokens        int
	// WantJSON hints that the provider should request structured JSON output
	// when the underlying model supports it.
	WantJSON bool
}

// Provider abstracts a chat-completion text generator. Implementations
// return the raw model text; parsing and repair happen downstream.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
	ModelName() string
}

// NewDefaultProvider returns a provider based on configured credentials.
// OpenAI is preferred when OPENAI_API_KEY is set; Cohere is used when only
// COHERE_API_KEY is present. Returns nil when neither is configured.
func NewDefaultProvider() Provider {
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		model := os.Getenv("OPENAI_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		return NewOpenAIChat(apiKey, model, os.Getenv("OPENAI_BASE_URL"))
	}

	if apiKey := os.Getenv("COHERE_API_KEY"); apiKey != "" {
		model := os.Getenv("COHERE_MODEL")
		if model == "" {
			model = "command-r-08-2024"
		}
		return NewCohereChat(apiKey, model)
	}

	return nil
}
