package subtitle

import (
	"fmt"
	"math"
	"strings"

	"clipscribe/transcript"
)

// FormatTimecode converts seconds to the SRT timecode format HH:MM:SS,mmm.
// The value is decomposed from whole milliseconds so that decimal inputs like
// 7199.999 render exactly. Hours grow beyond two digits for very long media
// but are never truncated.
func FormatTimecode(seconds float64) string {
	totalMS := int64(math.Round(seconds * 1000))

	hours := totalMS / 3600000
	minutes := (totalMS % 3600000) / 60000
	secs := (totalMS % 60000) / 1000
	millis := totalMS % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}

// Document renders timed segments as an SRT subtitle document: 1-based cue
// numbers, "start --> end" time ranges, the raw segment text and a blank
// separator line. Input order is preserved; overlapping cues are not merged.
func Document(segments []transcript.Segment) string {
	var b strings.Builder

	for i, seg := range segments {
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n",
			FormatTimecode(seg.Start),
			FormatTimecode(seg.End))
		fmt.Fprintf(&b, "%s\n\n", seg.Text)
	}

	return b.String()
}
