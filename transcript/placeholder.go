package transcript

import (
	"math/rand"

	"clipscribe/config"
)

// placeholderPhrases is the fixed cycle of filler lines used when no real
// speech recognition is available.
var placeholderPhrases = []string{
	"Hello, welcome to this video.",
	"This is a demonstration of our video processing service.",
	"We hope you find it useful and informative.",
	"Thank you for watching!",
	"This transcript was generated automatically.",
	"The video processing is working perfectly.",
	"You can now download your video with subtitles.",
	"Feel free to use this service again.",
	"We appreciate your feedback and support.",
	"Have a great day!",
}

// Placeholder synthesizes a transcript covering up to totalDuration seconds.
// Each segment lasts 3-5 seconds, clipped so the final segment never overruns
// the total. Generation stops once the phrase list is exhausted or the
// accumulated time reaches the duration. The output is explicitly synthetic
// and must never be presented as real speech recognition.
func Placeholder(totalDuration float64, rng *rand.Rand) []Segment {
	if totalDuration <= 0 {
		return nil
	}

	segments := make([]Segment, 0, len(placeholderPhrases))
	current := 0.0

	for i := 0; i < len(placeholderPhrases) && current < totalDuration; i++ {
		span := config.PlaceholderMinSegment +
			rng.Float64()*(config.PlaceholderMaxSegment-config.PlaceholderMinSegment)
		if remaining := totalDuration - current; span > remaining {
			span = remaining
		}

		segments = append(segments, Segment{
			Text:  placeholderPhrases[i],
			Start: current,
			End:   current + span,
		})
		current += span
	}

	return NormalizeAll(segments)
}
