package transcript

import "math"

// Segment is one spoken span of a transcript. Times are carried in two
// mirrored representations: seconds (Start/End) and milliseconds
// (OffsetMS/DurationMS). Normalize reconciles whichever pair the source
// populated so both agree to the nearest millisecond.
type Segment struct {
	Text       string  `json:"text"`
	Start      float64 `json:"start"`
	End        float64 `json:"end"`
	OffsetMS   int64   `json:"offset"`
	DurationMS int64   `json:"duration"`
}

// Normalize recomputes the derived timing fields. When the second-based
// fields are set they win; otherwise the millisecond fields are mirrored
// back into seconds. Segment order is never changed by normalization.
func (s *Segment) Normalize() {
	if s.Start == 0 && s.End == 0 && (s.OffsetMS != 0 || s.DurationMS != 0) {
		s.Start = float64(s.OffsetMS) / 1000
		s.End = s.Start + float64(s.DurationMS)/1000
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	s.OffsetMS = int64(math.Round(s.Start * 1000))
	s.DurationMS = int64(math.Round((s.End - s.Start) * 1000))
}

// NormalizeAll normalizes every segment in place and returns the slice.
func NormalizeAll(segments []Segment) []Segment {
	for i := range segments {
		segments[i].Normalize()
	}
	return segments
}

// TotalDuration returns the end time of the last segment in seconds, or 0
// for an empty transcript. Segments arrive in non-decreasing start order
// from every source, so the last end is the transcript length.
func TotalDuration(segments []Segment) float64 {
	if len(segments) == 0 {
		return 0
	}
	return segments[len(segments)-1].End
}
