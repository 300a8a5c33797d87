package transcript

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"clipscribe/config"
)

// ErrNoTranscript is returned when no transcript exists for a video in any
// of the attempted languages.
var ErrNoTranscript = errors.New("transcript not available in requested languages")

// youtubeLinkRE matches watch, shorts and short-link URL shapes and captures
// the 11-character video identifier.
var youtubeLinkRE = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?(?:youtube\.com/(?:watch\?v=|shorts/)|youtu\.be/)([\w-]{11})`)

// ExtractVideoID returns the video identifier embedded in a YouTube URL, or
// "" when the string is not a recognized YouTube link.
func ExtractVideoID(link string) string {
	m := youtubeLinkRE.FindStringSubmatch(link)
	if m == nil {
		return ""
	}
	return m[1]
}

// Source fetches timed transcript segments for an external video. The
// transcript provider is an opaque collaborator; implementations only
// guarantee segments in non-decreasing start order.
type Source interface {
	Fetch(ctx context.Context, videoID, lang string) ([]Segment, error)
}

// YouTubeSource fetches captions from the YouTube timedtext endpoint.
type YouTubeSource struct {
	endpoint string
	client   *http.Client
}

// NewYouTubeSource creates a transcript source backed by the public
// timedtext API.
func NewYouTubeSource() *YouTubeSource {
	return &YouTubeSource{
		endpoint: "https://video.google.com/timedtext",
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// timedtext XML shape returned by the captions endpoint.
type timedText struct {
	XMLName xml.Name       `xml:"transcript"`
	Texts   []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Content  string  `xml:",chardata"`
}

// Fetch retrieves the transcript for one video in one language.
func (y *YouTubeSource) Fetch(ctx context.Context, videoID, lang string) ([]Segment, error) {
	q := url.Values{}
	q.Set("v", videoID)
	if lang != "" && lang != "auto" {
		q.Set("lang", lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		// The endpoint answers 200 with an empty body when no track exists.
		return nil, ErrNoTranscript
	}

	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("timedtext parse failed: %w", err)
	}
	if len(doc.Texts) == 0 {
		return nil, ErrNoTranscript
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		segments = append(segments, Segment{
			Text:  html.UnescapeString(strings.TrimSpace(cue.Content)),
			Start: cue.Start,
			End:   cue.Start + cue.Duration,
		})
	}
	return NormalizeAll(segments), nil
}

// FetchWithFallback tries a small ordered cascade of language preferences
// until one yields a transcript. The preferred language is tried first,
// followed by English variants and the auto-generated track.
func FetchWithFallback(ctx context.Context, src Source, videoID, lang string) ([]Segment, error) {
	cascade := []string{lang, "en", "en-US", "en-GB", "auto"}
	tried := make(map[string]bool, len(cascade))

	var lastErr error
	for _, l := range cascade {
		if l == "" || tried[l] {
			continue
		}
		tried[l] = true

		segments, err := src.Fetch(ctx, videoID, l)
		if err == nil && len(segments) > 0 {
			return segments, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoTranscript, lastErr)
	}
	return nil, ErrNoTranscript
}

// Context reduces segments to a single grounding string for the generation
// prompt: texts joined with single spaces, capped at the configured length.
func Context(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.Text != "" {
			parts = append(parts, seg.Text)
		}
	}

	joined := strings.Join(parts, " ")
	if len(joined) > config.MaxContextChars {
		joined = joined[:config.MaxContextChars]
	}
	return joined
}
