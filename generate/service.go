package generate

import (
	"context"
	"errors"
	"log"
	"strings"

	"clipscribe/config"
	"clipscribe/textgen"
	"clipscribe/transcript"
)

// ErrBadInput marks a request that cannot be serviced because of missing or
// invalid caller input.
var ErrBadInput = errors.New("invalid generation input")

// ArticleExtractor pulls readable text out of a non-YouTube web page so it
// can serve as grounding context.
type ArticleExtractor interface {
	ExtractText(ctx context.Context, pageURL string) (string, error)
}

// Request is a caller-supplied generation configuration. Out-of-range
// fields are coerced to their defaults rather than rejected.
type Request struct {
	Topic     string   `json:"topic"`
	Mode      Mode     `json:"mode"`
	Count     int      `json:"count"`
	TextLimit int      `json:"textLimit"`
	Exclude   []string `json:"exclude"`
}

// Service runs the post-generation pipeline: prompt construction, one
// blocking generator call, response normalization.
type Service struct {
	provider    textgen.Provider
	transcripts transcript.Source
	articles    ArticleExtractor
}

// NewService wires the pipeline. transcripts and articles may be nil, in
// which case link-derived context is skipped.
func NewService(provider textgen.Provider, transcripts transcript.Source, articles ArticleExtractor) *Service {
	return &Service{provider: provider, transcripts: transcripts, articles: articles}
}

// coerce clamps every request field into its documented range.
func (r *Request) coerce() {
	r.Topic = strings.TrimSpace(r.Topic)
	if !ValidMode(r.Mode) {
		r.Mode = ModeProfessional
	}
	if r.Count < 1 || r.Count > config.MaxPostCount {
		r.Count = config.DefaultPostCount
	}
	if r.TextLimit < config.MinTextLimit || r.TextLimit > config.MaxTextLimit {
		r.TextLimit = config.DefaultTextLimit
	}
	kept := r.Exclude[:0]
	for _, t := range r.Exclude {
		if t != "" {
			kept = append(kept, t)
		}
	}
	r.Exclude = kept
}

// Generate produces exactly req.Count posts for the request.
func (s *Service) Generate(ctx context.Context, req Request) ([]Post, error) {
	req.coerce()

	if req.Topic == "" {
		req.Topic = FallbackTopic(req.Mode)
	}
	if req.Topic == "" {
		return nil, ErrBadInput
	}
	if s.provider == nil {
		return nil, errors.New("no text generation provider configured")
	}

	// A topic that is really a link becomes grounding context. Failures here
	// are soft: generation proceeds on the topic text alone.
	grounding := s.contextFromLink(ctx, req.Topic)

	params := ParamsFor(req.Mode)
	raw, err := s.provider.Complete(ctx, textgen.Request{
		System:           BuildSystemPrompt(req.Mode, req.TextLimit),
		User:             BuildUserPrompt(req.Count, req.TextLimit, req.Topic, grounding),
		Temperature:      params.Temperature,
		TopP:             promptTopP,
		PresencePenalty:  params.PresencePenalty,
		FrequencyPenalty: promptFrequencyPenalty,
		MaxTokens:        promptMaxTokens,
		WantJSON:         true,
	})
	if err != nil {
		return nil, err
	}

	return Normalize(raw, Options{
		Count:     req.Count,
		TextLimit: req.TextLimit,
		Exclude:   req.Exclude,
	})
}

// contextFromLink turns a YouTube link into transcript context or any other
// http(s) link into readable-article context. Returns "" when the topic is
// not a link or nothing could be extracted.
func (s *Service) contextFromLink(ctx context.Context, topic string) string {
	if videoID := transcript.ExtractVideoID(topic); videoID != "" && s.transcripts != nil {
		segments, err := transcript.FetchWithFallback(ctx, s.transcripts, videoID, "en")
		if err != nil {
			log.Printf("transcript unavailable for %s: %v", videoID, err)
			return ""
		}
		return transcript.Context(segments)
	}

	if s.articles != nil && (strings.HasPrefix(topic, "http://") || strings.HasPrefix(topic, "https://")) {
		text, err := s.articles.ExtractText(ctx, topic)
		if err != nil {
			log.Printf("article extraction failed for %s: %v", topic, err)
			return ""
		}
		if len(text) > config.MaxContextChars {
			text = text[:config.MaxContextChars]
		}
		return text
	}

	return ""
}
