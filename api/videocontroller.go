package api

import (
	"encoding/json"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"clipscribe/config"
	"clipscribe/transcript"
	"clipscribe/video"
)

// RegisterVideoRoutes registers the subtitle burn-in endpoints.
func RegisterVideoRoutes(r *gin.Engine, proc *video.Processor, src transcript.Source) {
	r.POST("/api/process-video", func(c *gin.Context) {
		handleProcessVideo(c, proc, src)
	})
	r.POST("/api/process-local-video", func(c *gin.Context) {
		handleProcessLocalVideo(c, proc)
	})
}

// handleProcessVideo burns subtitles into an uploaded video. A YouTube link
// in the videoLink field yields its transcript but the video itself cannot be
// downloaded, so the client is told to upload the file instead.
func handleProcessVideo(c *gin.Context, proc *video.Processor, src transcript.Source) {
	if proc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "video processor not configured"})
		return
	}

	if link := c.PostForm("videoLink"); link != "" {
		respondYouTubeLink(c, src, link)
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file or videoLink is required"})
		return
	}

	segments, err := parseTranscriptField(c.PostForm("transcript"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript field is not valid JSON"})
		return
	}

	processUpload(c, proc, file, segments)
}

// handleProcessLocalVideo burns subtitles into an uploaded video with no
// caller transcript, so the synthetic fallback always applies.
func handleProcessLocalVideo(c *gin.Context, proc *video.Processor) {
	if proc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "video processor not configured"})
		return
	}

	file, err := c.FormFile("video")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "video file is required"})
		return
	}

	processUpload(c, proc, file, nil)
}

func processUpload(c *gin.Context, proc *video.Processor, file *multipart.FileHeader, segments []transcript.Segment) {
	if file.Size > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	inputPath := filepath.Join(proc.UploadsDir(), fmt.Sprintf("input_%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, inputPath); err != nil {
		log.Printf("Failed to store upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(inputPath)

	result, err := proc.Process(c.Request.Context(), inputPath, file.Filename, segments)
	if err != nil {
		log.Printf("Video processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "video processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "video": result})
}

// respondYouTubeLink fetches the transcript for the linked video and answers
// with a client error: only direct uploads can be processed.
func respondYouTubeLink(c *gin.Context, src transcript.Source, link string) {
	videoID := transcript.ExtractVideoID(link)
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a recognizable YouTube link"})
		return
	}

	body := gin.H{"error": "downloading YouTube videos is not supported; upload the file directly"}
	if src != nil {
		if segments, err := transcript.FetchWithFallback(c.Request.Context(), src, videoID, ""); err == nil {
			body["transcript"] = segments
		}
	}
	c.JSON(http.StatusBadRequest, body)
}

func parseTranscriptField(raw string) ([]transcript.Segment, error) {
	if raw == "" {
		return nil, nil
	}
	var segments []transcript.Segment
	if err := json.Unmarshal([]byte(raw), &segments); err != nil {
		return nil, err
	}
	return segments, nil
}
