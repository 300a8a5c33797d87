package generate

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

// ErrNoContent is returned when no valid post survives normalization.
// Distinct from an upstream failure: the generator answered, but nothing in
// the answer was usable.
var ErrNoContent = errors.New("no content generated")

// Post is one normalized short-text result.
type Post struct {
	Text string `json:"text"`
}

// Options configure one normalization run.
type Options struct {
	// Count is the exact number of posts the result will contain; short
	// batches are padded with empty-text posts.
	Count int
	// TextLimit is the maximum character length per post. Longer candidates
	// are rejected, not truncated.
	TextLimit int
	// Exclude holds previously returned texts; candidates matching any of
	// them case-insensitively are rejected.
	Exclude []string
}

var (
	hashtagRE    = regexp.MustCompile(`#[\w-]+`)
	linkRE       = regexp.MustCompile(`https?://\S+`)
	mentionRE    = regexp.MustCompile(`@[\w-]+`)
	whitespaceRE = regexp.MustCompile(`\s+`)
)

// rawDocument is the structured shape the generator is instructed to return.
type rawDocument struct {
	Tweets []rawEntry `json:"tweets"`
}

type rawEntry struct {
	Text json.RawMessage `json:"text"`
}

// Normalize reduces a raw, possibly malformed generator response to exactly
// opts.Count clean posts. It never fails on malformed input: unparseable
// text is repaired into a single-entry document first. ErrNoContent is
// returned only when zero candidates survive the filters.
func Normalize(raw string, opts Options) ([]Post, error) {
	trimmed := stripFences(raw)

	var doc rawDocument
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil || doc.Tweets == nil {
		// Repair locally: wrap the leading slice of the raw text as the only
		// candidate so malformed upstream output alone never errors out.
		fallback, _ := json.Marshal(truncateRunes(trimmed, opts.TextLimit))
		doc = rawDocument{Tweets: []rawEntry{{Text: fallback}}}
	}

	seen := make(map[string]bool, len(opts.Exclude)+opts.Count)
	for _, prev := range opts.Exclude {
		seen[strings.ToLower(prev)] = true
	}

	posts := make([]Post, 0, opts.Count)
	for _, entry := range doc.Tweets {
		var text string
		if err := json.Unmarshal(entry.Text, &text); err != nil {
			// Non-string text field; skip.
			continue
		}

		text = cleanPost(text)
		if text == "" || utf8.RuneCountInString(text) > opts.TextLimit {
			continue
		}

		key := strings.ToLower(text)
		if seen[key] {
			continue
		}
		seen[key] = true

		posts = append(posts, Post{Text: text})
		if len(posts) >= opts.Count {
			break
		}
	}

	if len(posts) == 0 {
		return nil, ErrNoContent
	}

	// Pad to a fixed-size batch; the UI tolerates empty entries.
	for len(posts) < opts.Count {
		posts = append(posts, Post{})
	}
	return posts, nil
}

// stripFences removes surrounding whitespace and a wrapping markdown code
// fence (``` or ```json) if the generator added one.
func stripFences(raw string) string {
	t := strings.TrimSpace(raw)

	if strings.HasPrefix(t, "```") {
		if i := strings.Index(t, "\n"); i >= 0 {
			t = t[i+1:]
		} else {
			t = strings.TrimPrefix(t, "```json")
			t = strings.TrimPrefix(t, "```")
		}
		if j := strings.LastIndex(t, "```"); j >= 0 {
			t = t[:j]
		}
		t = strings.TrimSpace(t)
	}

	return t
}

// cleanPost applies the per-candidate scrub: trim, strip one layer of
// matching outer quotes, drop hashtags/links/mentions, collapse whitespace.
func cleanPost(raw string) string {
	text := strings.TrimSpace(raw)

	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			text = strings.TrimSpace(text[1 : len(text)-1])
		}
	}

	text = hashtagRE.ReplaceAllString(text, "")
	text = linkRE.ReplaceAllString(text, "")
	text = mentionRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
