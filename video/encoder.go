package video

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"clipscribe/config"
)

// Encoder wraps the external ffmpeg tool. The binary path is fixed at
// construction time instead of mutating process-wide state.
type Encoder struct {
	ffmpegPath string
}

// NewEncoder creates an encoder. ffmpegPath may be empty to use the binary
// found on PATH.
func NewEncoder(ffmpegPath string) *Encoder {
	return &Encoder{ffmpegPath: ffmpegPath}
}

// BurnSubtitles renders the subtitle file into the video stream and writes a
// web-optimized mp4. The call blocks until encoding completes or fails; no
// partial output is usable on error.
func (e *Encoder) BurnSubtitles(inputPath, subtitlePath, outputPath string) error {
	stream := ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vf":       fmt.Sprintf("subtitles='%s'", escapeFilterPath(subtitlePath)),
			"c:v":      config.VideoCodec,
			"c:a":      config.AudioCodec,
			"preset":   config.VideoPreset,
			"crf":      config.VideoCRF,
			"movflags": "+faststart",
			"threads":  "0",
		}).
		OverWriteOutput()

	if e.ffmpegPath != "" {
		stream = stream.SetFfmpegPath(e.ffmpegPath)
	}

	if err := stream.Run(); err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

// ExtractAudio writes the input's audio track as 16kHz mono PCM, the format
// expected by speech-recognition tooling.
func (e *Encoder) ExtractAudio(inputPath, outputPath string) error {
	stream := ffmpeg.Input(inputPath).
		Output(outputPath, ffmpeg.KwArgs{
			"vn":     "",
			"acodec": "pcm_s16le",
			"ar":     "16000",
			"ac":     "1",
		}).
		OverWriteOutput()

	if e.ffmpegPath != "" {
		stream = stream.SetFfmpegPath(e.ffmpegPath)
	}

	if err := stream.Run(); err != nil {
		return fmt.Errorf("audio extraction failed: %w", err)
	}
	return nil
}

// ProbeDuration returns the media duration in seconds via ffprobe.
func (e *Encoder) ProbeDuration(inputPath string) (float64, error) {
	out, err := ffmpeg.Probe(inputPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed: %w", err)
	}

	var probe struct {
		Format struct {
			Duration string `json:"duration"`
		} `json:"format"`
	}
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("ffprobe output parse failed: %w", err)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration parse failed: %w", err)
	}
	return duration, nil
}

// escapeFilterPath converts a path into the form the subtitles video filter
// expects: forward slashes, colons escaped.
func escapeFilterPath(p string) string {
	escaped := filepath.ToSlash(p)
	return strings.ReplaceAll(escaped, ":", "\\:")
}
