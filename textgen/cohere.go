package textgen

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereChat implements Provider using the Cohere Chat API.
// Docs: https://docs.cohere.com/reference/chat
// SDK: github.com/cohere-ai/cohere-go/v2
type CohereChat struct {
	client *cohereclient.Client
	model  string
}

// NewCohereChat builds a Cohere-backed chat provider. The HTTP client forces
// HTTP/1.1 to avoid HTTP/2 protocol errors seen against the Cohere edge.
func NewCohereChat(apiKey, model string) *CohereChat {
	httpClient := &http.Client{
		Timeout: 2 * time.Minute,
		Transport: &http.Transport{
			TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
			ForceAttemptHTTP2: false,
		},
	}
	client := cohereclient.NewClient(
		cohereclient.WithToken(apiKey),
		cohereclient.WithHTTPClient(httpClient),
	)
	return &CohereChat{client: client, model: model}
}

func (c *CohereChat) ModelName() string { return c.model }

// Complete sends the system text as the chat preamble and the user text as
// the message. Cohere has no JSON response-format switch for every model, so
// the format contract rides in the prompt alone.
func (c *CohereChat) Complete(ctx context.Context, req Request) (string, error) {
	maxTokens := req.MaxTokens
	temperature := req.Temperature
	topP := req.TopP
	presence := req.PresencePenalty
	frequency := req.FrequencyPenalty

	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Model:            &c.model,
		Message:          req.User,
		Preamble:         &req.System,
		Temperature:      &temperature,
		P:                &topP,
		PresencePenalty:  &presence,
		FrequencyPenalty: &frequency,
		MaxTokens:        &maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: cohere chat: %v", ErrUpstream, err)
	}
	if resp == nil {
		return "", fmt.Errorf("%w: cohere chat returned empty response", ErrUpstream)
	}
	if resp.Text == "" {
		return "", fmt.Errorf("%w: cohere chat returned no text", ErrUpstream)
	}

	return resp.Text, nil
}
