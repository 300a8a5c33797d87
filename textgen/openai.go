package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// jsonResponseFormatRE is a best-effort match for models that accept
// response_format {"type":"json_object"}.
var jsonResponseFormatRE = regexp.MustCompile(`(?i)(gpt-4o|gpt-4\.1|gpt-4-turbo|o3)`)

// OpenAIChat implements Provider against the OpenAI chat-completions API or
// any compatible endpoint.
// Endpoint: POST {base}/v1/chat/completions
// Response: {"choices":[{"message":{"content":"..."}}]}
type OpenAIChat struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// NewOpenAIChat builds a chat provider. baseURL may be empty for the public
// API, or point at a compatible server.
func NewOpenAIChat(apiKey, model, baseURL string) *OpenAIChat {
	if baseURL == "" {
		baseURL = "https://api.openai.com"
	}
	return &OpenAIChat{
		apiKey:  apiKey,
		model:   model,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 2 * time.Minute},
	}
}

func (o *OpenAIChat) ModelName() string { return o.model }

// Complete performs a single non-streamed chat completion.
func (o *OpenAIChat) Complete(ctx context.Context, req Request) (string, error) {
	payload := map[string]interface{}{
		"model": o.model,
		"messages": []map[string]string{
			{"role": "system", "content": req.System},
			{"role": "user", "content": req.User},
		},
		"temperature":       req.Temperature,
		"top_p":             req.TopP,
		"presence_penalty":  req.PresencePenalty,
		"frequency_penalty": req.FrequencyPenalty,
		"max_tokens":        req.MaxTokens,
		"n":                 1,
	}
	if req.WantJSON && jsonResponseFormatRE.MatchString(o.model) {
		payload["response_format"] = map[string]string{"type": "json_object"}
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/v1/chat/completions", bytes.NewBuffer(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: timeout (model=%s)", ErrUpstream, o.model)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content interface{} `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: response had no choices", ErrUpstream)
	}

	return contentToString(parsed.Choices[0].Message.Content)
}

// contentToString flattens a message content field. Some compatible
// providers return an array of {type,text} parts instead of a plain string.
func contentToString(v interface{}) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case []interface{}:
		var b strings.Builder
		for _, it := range x {
			m, ok := it.(map[string]interface{})
			if !ok {
				continue
			}
			if t, ok := m["text"].(string); ok {
				b.WriteString(t)
			}
		}
		s := b.String()
		if strings.TrimSpace(s) == "" {
			return "", fmt.Errorf("%w: empty content", ErrUpstream)
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: unexpected content type %T", ErrUpstream, v)
	}
}
