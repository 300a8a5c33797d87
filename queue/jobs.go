package queue

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"

	"clipscribe/transcript"
	"clipscribe/video"
)

// VideoJob asks the worker to burn subtitles into a video that already sits
// on shared storage. Transcript is optional; an empty one triggers the
// synthetic fallback.
type VideoJob struct {
	JobID      string               `json:"jobId"`
	Path       string               `json:"path"`
	Filename   string               `json:"filename"`
	Transcript []transcript.Segment `json:"transcript,omitempty"`
}

// NewVideoJob builds a job with a fresh ID.
func NewVideoJob(path, filename string, segments []transcript.Segment) VideoJob {
	return VideoJob{
		JobID:      uuid.New().String(),
		Path:       path,
		Filename:   filename,
		Transcript: segments,
	}
}

// NewVideoJobHandler returns the message handler for video-processing jobs.
// Jobs with missing inputs are marked and skipped; processing failures are
// left unmarked for retry.
func NewVideoJobHandler(processor *video.Processor) MessageHandler {
	return &TypedMessageHandler[VideoJob]{
		AlwaysMark: true,
		Validate: func(job *VideoJob) bool {
			if job.Path == "" {
				log.Printf("Skipping job %s: no input path", job.JobID)
				return false
			}
			if _, err := os.Stat(job.Path); err != nil {
				log.Printf("Skipping job %s: input not readable: %v", job.JobID, err)
				return false
			}
			return true
		},
		Process: func(ctx context.Context, job *VideoJob) error {
			log.Printf("Processing video job %s: %s", job.JobID, job.Path)
			result, err := processor.Process(ctx, job.Path, job.Filename, job.Transcript)
			if err != nil {
				return err
			}
			log.Printf("Job %s done: %s (%.1fs)", job.JobID, result.DownloadURL, result.Duration)
			return nil
		},
	}
}
