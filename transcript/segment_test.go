package transcript

import "testing"

func TestSegmentNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   Segment
		want Segment
	}{
		{
			"seconds populate milliseconds",
			Segment{Text: "a", Start: 1.5, End: 3.25},
			Segment{Text: "a", Start: 1.5, End: 3.25, OffsetMS: 1500, DurationMS: 1750},
		},
		{
			"milliseconds populate seconds",
			Segment{Text: "b", OffsetMS: 2000, DurationMS: 1500},
			Segment{Text: "b", Start: 2, End: 3.5, OffsetMS: 2000, DurationMS: 1500},
		},
		{
			"seconds win over stale milliseconds",
			Segment{Text: "c", Start: 1, End: 2, OffsetMS: 999, DurationMS: 1},
			Segment{Text: "c", Start: 1, End: 2, OffsetMS: 1000, DurationMS: 1000},
		},
		{
			"end clamped to start",
			Segment{Text: "d", Start: 5, End: 4},
			Segment{Text: "d", Start: 5, End: 5, OffsetMS: 5000, DurationMS: 0},
		},
		{
			"zero value stays zero",
			Segment{Text: "e"},
			Segment{Text: "e"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := c.in
			got.Normalize()
			if got != c.want {
				t.Fatalf("Normalize() = %+v; want %+v", got, c.want)
			}
		})
	}
}

func TestTotalDuration(t *testing.T) {
	if d := TotalDuration(nil); d != 0 {
		t.Fatalf("TotalDuration(nil) = %v; want 0", d)
	}

	segments := []Segment{
		{Start: 0, End: 2},
		{Start: 2, End: 7.5},
	}
	if d := TotalDuration(segments); d != 7.5 {
		t.Fatalf("TotalDuration = %v; want 7.5", d)
	}
}
