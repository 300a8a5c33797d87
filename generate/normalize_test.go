package generate

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeValidBatch(t *testing.T) {
	raw := `{"tweets":[{"text":"First post"},{"text":"Second post"},{"text":"Third post"}]}`

	posts, err := Normalize(raw, Options{Count: 3, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("got %d posts; want 3", len(posts))
	}
	want := []string{"First post", "Second post", "Third post"}
	for i, w := range want {
		if posts[i].Text != w {
			t.Fatalf("posts[%d] = %q; want %q", i, posts[i].Text, w)
		}
	}
}

func TestNormalizeCodeFence(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"json fence", "```json\n{\"tweets\":[{\"text\":\"Fenced post\"}]}\n```"},
		{"bare fence", "```\n{\"tweets\":[{\"text\":\"Fenced post\"}]}\n```"},
		{"surrounding whitespace", "  \n{\"tweets\":[{\"text\":\"Fenced post\"}]}\n  "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			posts, err := Normalize(c.raw, Options{Count: 1, TextLimit: 280})
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if posts[0].Text != "Fenced post" {
				t.Fatalf("posts[0] = %q; want %q", posts[0].Text, "Fenced post")
			}
		})
	}
}

func TestNormalizeMalformedFallback(t *testing.T) {
	// Plain prose instead of the requested document shape; the whole text
	// becomes the single candidate.
	posts, err := Normalize("Just a plain sentence from the model.", Options{Count: 2, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if posts[0].Text != "Just a plain sentence from the model." {
		t.Fatalf("posts[0] = %q", posts[0].Text)
	}
	if posts[1].Text != "" {
		t.Fatalf("posts[1] = %q; want padding entry", posts[1].Text)
	}
}

func TestNormalizeCleaning(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"hashtags stripped", "Great insight #startup #dev-life here", "Great insight here"},
		{"links stripped", "Read this https://example.com/a?b=1 now", "Read this now"},
		{"mentions stripped", "Thanks @someone for the tip", "Thanks for the tip"},
		{"double quotes stripped", `"Quoted post"`, "Quoted post"},
		{"single quotes stripped", "'Quoted post'", "Quoted post"},
		{"mismatched quotes kept", `"Half quoted`, `"Half quoted`},
		{"whitespace collapsed", "Too   many\n\nspaces", "Too many spaces"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			raw := `{"tweets":[{"text":` + quoteJSON(c.in) + `}]}`
			posts, err := Normalize(raw, Options{Count: 1, TextLimit: 280})
			if err != nil {
				t.Fatalf("Normalize error: %v", err)
			}
			if posts[0].Text != c.want {
				t.Fatalf("got %q; want %q", posts[0].Text, c.want)
			}
		})
	}
}

func TestNormalizeRejectsOverLimit(t *testing.T) {
	long := strings.Repeat("a", 300)
	raw := `{"tweets":[{"text":"` + long + `"},{"text":"Short enough"}]}`

	posts, err := Normalize(raw, Options{Count: 2, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if posts[0].Text != "Short enough" {
		t.Fatalf("posts[0] = %q; over-limit candidate should be rejected, not truncated", posts[0].Text)
	}
}

func TestNormalizeDeduplication(t *testing.T) {
	raw := `{"tweets":[{"text":"Same post"},{"text":"SAME POST"},{"text":"Other post"}]}`

	posts, err := Normalize(raw, Options{Count: 3, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if posts[0].Text != "Same post" || posts[1].Text != "Other post" {
		t.Fatalf("got %q, %q; case-insensitive duplicate should be dropped", posts[0].Text, posts[1].Text)
	}
	if posts[2].Text != "" {
		t.Fatalf("posts[2] = %q; want padding entry", posts[2].Text)
	}
}

func TestNormalizeExcludeSet(t *testing.T) {
	raw := `{"tweets":[{"text":"Already shown"},{"text":"Brand new"}]}`

	posts, err := Normalize(raw, Options{
		Count:     1,
		TextLimit: 280,
		Exclude:   []string{"already shown"},
	})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if posts[0].Text != "Brand new" {
		t.Fatalf("posts[0] = %q; excluded text should be rejected", posts[0].Text)
	}
}

func TestNormalizeStopsAtCount(t *testing.T) {
	raw := `{"tweets":[{"text":"One"},{"text":"Two"},{"text":"Three"},{"text":"Four"}]}`

	posts, err := Normalize(raw, Options{Count: 2, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts; want exactly 2", len(posts))
	}
}

func TestNormalizeSkipsNonStringText(t *testing.T) {
	raw := `{"tweets":[{"text":42},{"text":"Real post"}]}`

	posts, err := Normalize(raw, Options{Count: 1, TextLimit: 280})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if posts[0].Text != "Real post" {
		t.Fatalf("posts[0] = %q; numeric text entry should be skipped", posts[0].Text)
	}
}

func TestNormalizeNoContent(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"empty strings", `{"tweets":[{"text":""},{"text":"   "}]}`},
		{"only hashtags", `{"tweets":[{"text":"#one #two"}]}`},
		{"empty document", `{"tweets":[]}`},
		{"blank raw", "   "},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Normalize(c.raw, Options{Count: 3, TextLimit: 280})
			if !errors.Is(err, ErrNoContent) {
				t.Fatalf("err = %v; want ErrNoContent", err)
			}
		})
	}
}

func quoteJSON(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
