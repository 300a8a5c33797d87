package video

import "clipscribe/transcript"

// ProcessedVideo describes one completed subtitle burn-in run, shaped for
// the HTTP response.
type ProcessedVideo struct {
	Filename    string               `json:"filename"`
	Duration    float64              `json:"duration"`
	Format      string               `json:"format"`
	Quality     string               `json:"quality"`
	Subtitles   bool                 `json:"subtitles"`
	Transcript  []transcript.Segment `json:"transcript"`
	PreviewURL  string               `json:"previewUrl"`
	DownloadURL string               `json:"downloadUrl"`
	// Synthetic is true when the transcript came from the placeholder
	// generator rather than a real source.
	Synthetic bool `json:"synthetic,omitempty"`
	// PublishedID is set when the output was also published to YouTube.
	PublishedID string `json:"publishedId,omitempty"`
}

// Metadata describes a video being published to YouTube.
type Metadata struct {
	Title       string
	Description string
	Tags        []string
	CategoryID  string
}
