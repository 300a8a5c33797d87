package generate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clipscribe/config"
	"clipscribe/textgen"
)

// fakeProvider records the last request and answers with a canned response.
type fakeProvider struct {
	last     textgen.Request
	response string
	err      error
}

func (f *fakeProvider) Complete(_ context.Context, req textgen.Request) (string, error) {
	f.last = req
	return f.response, f.err
}

func (f *fakeProvider) ModelName() string { return "fake" }

func TestServiceGenerate(t *testing.T) {
	provider := &fakeProvider{
		response: `{"tweets":[{"text":"Alpha"},{"text":"Beta"},{"text":"Gamma"}]}`,
	}
	svc := NewService(provider, nil, nil)

	posts, err := svc.Generate(context.Background(), Request{
		Topic: "shipping fast",
		Mode:  ModeReaction,
		Count: 3,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts; want 3", len(posts))
	}

	req := provider.last
	if !req.WantJSON {
		t.Fatalf("WantJSON = false; want true")
	}
	if req.Temperature != 0.75 || req.PresencePenalty != 0.4 {
		t.Fatalf("sampling params = %v/%v; want reaction mode values", req.Temperature, req.PresencePenalty)
	}
	if req.TopP != 0.92 || req.FrequencyPenalty != 0.2 || req.MaxTokens != 1000 {
		t.Fatalf("shared params = %+v", req)
	}
	if !strings.Contains(req.User, "shipping fast") {
		t.Fatalf("user prompt missing topic:\n%s", req.User)
	}
}

func TestServiceGenerateCoercion(t *testing.T) {
	provider := &fakeProvider{response: `{"tweets":[{"text":"Only one"}]}`}
	svc := NewService(provider, nil, nil)

	posts, err := svc.Generate(context.Background(), Request{
		Topic:     "topic",
		Mode:      Mode("nonsense"),
		Count:     99,
		TextLimit: 5000,
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if len(posts) != config.DefaultPostCount {
		t.Fatalf("got %d posts; want default count %d", len(posts), config.DefaultPostCount)
	}
	// Unknown mode falls back to professional persona parameters.
	if provider.last.Temperature != 0.6 || provider.last.PresencePenalty != 0.2 {
		t.Fatalf("params = %v/%v; want professional defaults", provider.last.Temperature, provider.last.PresencePenalty)
	}
	if !strings.Contains(provider.last.User, "max 280 characters") {
		t.Fatalf("text limit not reset to default:\n%s", provider.last.User)
	}
}

func TestServiceGenerateFallbackTopic(t *testing.T) {
	provider := &fakeProvider{response: `{"tweets":[{"text":"Something"}]}`}
	svc := NewService(provider, nil, nil)

	if _, err := svc.Generate(context.Background(), Request{Mode: ModeLearning, Count: 1}); err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if !strings.Contains(provider.last.User, FallbackTopic(ModeLearning)) {
		t.Fatalf("fallback topic not used:\n%s", provider.last.User)
	}
}

func TestServiceGenerateUpstreamError(t *testing.T) {
	provider := &fakeProvider{err: textgen.ErrUpstream}
	svc := NewService(provider, nil, nil)

	_, err := svc.Generate(context.Background(), Request{Topic: "topic", Count: 1})
	if !errors.Is(err, textgen.ErrUpstream) {
		t.Fatalf("err = %v; want ErrUpstream", err)
	}
}

func TestServiceGenerateNoProvider(t *testing.T) {
	svc := NewService(nil, nil, nil)
	if _, err := svc.Generate(context.Background(), Request{Topic: "topic"}); err == nil {
		t.Fatalf("expected error with no provider")
	}
}

func TestServiceGenerateExclude(t *testing.T) {
	provider := &fakeProvider{
		response: `{"tweets":[{"text":"Repeat me"},{"text":"Fresh take"}]}`,
	}
	svc := NewService(provider, nil, nil)

	posts, err := svc.Generate(context.Background(), Request{
		Topic:   "topic",
		Count:   1,
		Exclude: []string{"repeat me"},
	})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if posts[0].Text != "Fresh take" {
		t.Fatalf("posts[0] = %q; excluded text returned", posts[0].Text)
	}
}
