package subtitle

import (
	"testing"

	"clipscribe/transcript"
)

func TestFormatTimecode(t *testing.T) {
	cases := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00:00,000"},
		{"fraction", 1.5, "00:00:01,500"},
		{"just under a minute", 59.999, "00:00:59,999"},
		{"minute rollover", 61.25, "00:01:01,250"},
		{"hour with millis", 3661.007, "01:01:01,007"},
		{"just under two hours", 7199.999, "01:59:59,999"},
		{"whole minute", 60, "00:01:00,000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FormatTimecode(c.seconds)
			if got != c.want {
				t.Fatalf("FormatTimecode(%v) = %q; want %q", c.seconds, got, c.want)
			}
		})
	}
}

func TestDocument(t *testing.T) {
	segments := []transcript.Segment{
		{Text: "Hello there.", Start: 0, End: 2.5},
		{Text: "Second line.", Start: 2.5, End: 61.25},
	}

	want := "1\n00:00:00,000 --> 00:00:02,500\nHello there.\n\n" +
		"2\n00:00:02,500 --> 00:01:01,250\nSecond line.\n\n"

	got := Document(segments)
	if got != want {
		t.Fatalf("Document() = %q; want %q", got, want)
	}
}

func TestDocumentEmpty(t *testing.T) {
	if got := Document(nil); got != "" {
		t.Fatalf("Document(nil) = %q; want empty", got)
	}
}
