package video

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"clipscribe/common"
	"clipscribe/config"
	"clipscribe/subtitle"
	"clipscribe/transcript"
)

// ProcessorConfig wires the optional collaborators of the pipeline. Store
// and Publisher may be nil; the pipeline then only writes local artifacts.
type ProcessorConfig struct {
	UploadsDir string
	Store      *common.S3
	Bucket     string
	Prefix     string
	Publisher  *Publisher
}

// Processor runs the subtitle pipeline: probe duration, obtain or fabricate
// a transcript, render the SRT document, burn it into the video. Each
// request owns its files exclusively until completion.
type Processor struct {
	enc        *Encoder
	uploadsDir string
	store      *common.S3
	bucket     string
	prefix     string
	publisher  *Publisher
	rng        *rand.Rand
}

// NewProcessor creates a processor around an encoder.
func NewProcessor(enc *Encoder, cfg ProcessorConfig) *Processor {
	dir := cfg.UploadsDir
	if dir == "" {
		dir = config.UploadsDir
	}
	return &Processor{
		enc:        enc,
		uploadsDir: dir,
		store:      cfg.Store,
		bucket:     cfg.Bucket,
		prefix:     cfg.Prefix,
		publisher:  cfg.Publisher,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// UploadsDir returns the working directory for inputs and outputs.
func (p *Processor) UploadsDir() string { return p.uploadsDir }

// Process burns subtitles into the video at inputPath. When provided is
// empty, the audio track is extracted for transcription and a synthetic
// placeholder transcript stands in for real speech recognition; the result
// is labeled accordingly. Intermediate files are removed on every exit path.
func (p *Processor) Process(ctx context.Context, inputPath, originalName string, provided []transcript.Segment) (*ProcessedVideo, error) {
	duration, err := p.enc.ProbeDuration(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read video duration: %w", err)
	}

	segments := transcript.NormalizeAll(provided)
	synthetic := false
	if len(segments) == 0 {
		audioPath := filepath.Join(config.TempDir, fmt.Sprintf("audio_%d.wav", time.Now().UnixMilli()))
		if err := p.enc.ExtractAudio(inputPath, audioPath); err != nil {
			return nil, err
		}
		defer os.Remove(audioPath)

		segments = transcript.Placeholder(duration, p.rng)
		synthetic = true
		log.Printf("Generated synthetic transcript with %d segments", len(segments))
	}

	stamp := time.Now().UnixMilli()
	srtPath := filepath.Join(p.uploadsDir, fmt.Sprintf("subtitles_%d.srt", stamp))
	if err := os.WriteFile(srtPath, []byte(subtitle.Document(segments)), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write subtitle file: %w", err)
	}

	outputName := fmt.Sprintf("output_%d.mp4", stamp)
	outputPath := filepath.Join(p.uploadsDir, outputName)
	log.Printf("Burning subtitles into video...")
	if err := p.enc.BurnSubtitles(inputPath, srtPath, outputPath); err != nil {
		os.Remove(outputPath)
		return nil, fmt.Errorf("video encoding failed: %w", err)
	}
	log.Printf("Video created: %s", outputPath)

	if p.store != nil && p.bucket != "" {
		if err := p.uploadArtifact(ctx, outputPath, outputName); err != nil {
			log.Printf("S3 upload failed for %s: %v", outputName, err)
		}
	}

	result := &ProcessedVideo{
		Filename:    displayName(originalName),
		Duration:    duration,
		Format:      "MP4",
		Quality:     "HD",
		Subtitles:   true,
		Transcript:  segments,
		Synthetic:   synthetic,
		PreviewURL:  "/api/video-preview?path=" + url.QueryEscape(outputPath),
		DownloadURL: "/api/video-download?path=" + url.QueryEscape(outputPath),
	}

	if p.publisher != nil {
		videoID, err := p.publisher.Publish(outputPath, segments)
		if err != nil {
			log.Printf("YouTube publish failed: %v", err)
		} else {
			result.PublishedID = videoID
		}
	}

	return result, nil
}

func (p *Processor) uploadArtifact(ctx context.Context, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	key := p.prefix + "videos/" + name
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	return p.store.Put(ctx, p.bucket, key, f, "video/mp4")
}

func displayName(originalName string) string {
	if originalName == "" {
		return "video-with-subtitles.mp4"
	}
	return originalName
}
