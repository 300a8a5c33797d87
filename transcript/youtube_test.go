package transcript

import (
	"context"
	"errors"
	"strings"
	"testing"

	"clipscribe/config"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		link string
		want string
	}{
		{"watch link", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts link", "https://youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"no protocol", "youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"uppercase host", "HTTPS://WWW.YOUTUBE.COM/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"trailing params", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10s", "dQw4w9WgXcQ"},
		{"not youtube", "https://example.com/watch?v=dQw4w9WgXcQ", ""},
		{"plain topic", "how to cook pasta", ""},
		{"too short id", "https://youtu.be/short", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExtractVideoID(c.link)
			if got != c.want {
				t.Fatalf("ExtractVideoID(%q) = %q; want %q", c.link, got, c.want)
			}
		})
	}
}

// fakeSource answers from a fixed lang->segments map and records the order of
// attempted languages.
type fakeSource struct {
	byLang map[string][]Segment
	tried  []string
}

func (f *fakeSource) Fetch(_ context.Context, _ string, lang string) ([]Segment, error) {
	f.tried = append(f.tried, lang)
	if segs, ok := f.byLang[lang]; ok {
		return segs, nil
	}
	return nil, ErrNoTranscript
}

func TestFetchWithFallback(t *testing.T) {
	segs := []Segment{{Text: "hi", Start: 0, End: 1}}

	t.Run("preferred language wins", func(t *testing.T) {
		src := &fakeSource{byLang: map[string][]Segment{"de": segs}}
		got, err := FetchWithFallback(context.Background(), src, "video123abc", "de")
		if err != nil {
			t.Fatalf("FetchWithFallback error: %v", err)
		}
		if len(got) != 1 || got[0].Text != "hi" {
			t.Fatalf("got %+v", got)
		}
		if len(src.tried) != 1 || src.tried[0] != "de" {
			t.Fatalf("tried = %v; want [de]", src.tried)
		}
	})

	t.Run("falls through cascade", func(t *testing.T) {
		src := &fakeSource{byLang: map[string][]Segment{"en-GB": segs}}
		_, err := FetchWithFallback(context.Background(), src, "video123abc", "fr")
		if err != nil {
			t.Fatalf("FetchWithFallback error: %v", err)
		}
		want := []string{"fr", "en", "en-US", "en-GB"}
		if len(src.tried) != len(want) {
			t.Fatalf("tried = %v; want %v", src.tried, want)
		}
		for i := range want {
			if src.tried[i] != want[i] {
				t.Fatalf("tried = %v; want %v", src.tried, want)
			}
		}
	})

	t.Run("duplicate preference tried once", func(t *testing.T) {
		src := &fakeSource{byLang: map[string][]Segment{}}
		_, err := FetchWithFallback(context.Background(), src, "video123abc", "en")
		if !errors.Is(err, ErrNoTranscript) {
			t.Fatalf("err = %v; want ErrNoTranscript", err)
		}
		want := []string{"en", "en-US", "en-GB", "auto"}
		if len(src.tried) != len(want) {
			t.Fatalf("tried = %v; want %v", src.tried, want)
		}
	})

	t.Run("empty preference skipped", func(t *testing.T) {
		src := &fakeSource{byLang: map[string][]Segment{"en": segs}}
		if _, err := FetchWithFallback(context.Background(), src, "video123abc", ""); err != nil {
			t.Fatalf("FetchWithFallback error: %v", err)
		}
		if src.tried[0] != "en" {
			t.Fatalf("tried = %v; want en first", src.tried)
		}
	})
}

func TestContext(t *testing.T) {
	segments := []Segment{
		{Text: "first part"},
		{Text: ""},
		{Text: "second part"},
	}
	if got := Context(segments); got != "first part second part" {
		t.Fatalf("Context = %q", got)
	}

	long := []Segment{{Text: strings.Repeat("x", config.MaxContextChars+100)}}
	if got := Context(long); len(got) != config.MaxContextChars {
		t.Fatalf("Context length = %d; want %d", len(got), config.MaxContextChars)
	}
}
