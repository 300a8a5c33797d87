package config

import "time"

// Generation Constants
const (
	// DefaultPostCount is the number of posts returned when the request omits count
	DefaultPostCount = 6

	// MaxPostCount caps the per-request post count
	MaxPostCount = 10

	// DefaultTextLimit is the per-post character limit when the request omits one
	DefaultTextLimit = 280

	// MinTextLimit is the smallest accepted per-post character limit
	MinTextLimit = 40

	// MaxTextLimit is the largest accepted per-post character limit
	MaxTextLimit = 280

	// MaxContextChars caps transcript-derived context passed to the generator
	MaxContextChars = 5000

	// GenerationTimeout bounds a single chat-completion call
	GenerationTimeout = 90 * time.Second
)

// Video Output Constants
const (
	// VideoCodec is the video encoding codec
	VideoCodec = "libx264"

	// AudioCodec is the audio encoding codec
	AudioCodec = "aac"

	// VideoPreset is the ffmpeg encoding speed preset
	VideoPreset = "ultrafast"

	// VideoCRF is the constant rate factor (quality vs speed trade-off)
	VideoCRF = "28"

	// MaxUploadBytes limits accepted video uploads (500MB)
	MaxUploadBytes = 500 << 20
)

// Directory Constants
const (
	// UploadsDir is the working directory for uploads, subtitle files and outputs
	UploadsDir = "uploads"

	// TempDir is the directory for short-lived intermediate files
	TempDir = "/tmp"
)

// Transcript Constants
const (
	// PlaceholderMinSegment is the shortest synthetic transcript segment in seconds
	PlaceholderMinSegment = 3.0

	// PlaceholderMaxSegment is the longest synthetic transcript segment in seconds
	PlaceholderMaxSegment = 5.0

	// TranscriptCacheTTL is how long fetched transcripts stay in the cache
	TranscriptCacheTTL = 6 * time.Hour
)

// Topic Feed Constants
const (
	// DefaultTopicCount is the number of headline suggestions returned per feed
	DefaultTopicCount = 10

	// MaxTopicCount caps headline suggestions per request
	MaxTopicCount = 25
)

// YouTube Constants
const (
	// YouTubeCategoryID for Science & Technology
	YouTubeCategoryID = "28"

	// YouTubePrivacyStatus sets visibility of published videos
	YouTubePrivacyStatus = "unlisted"
)
