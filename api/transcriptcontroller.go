package api

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"clipscribe/config"
	"clipscribe/transcript"
	"clipscribe/video"
)

// RegisterTranscriptRoutes registers transcript retrieval and transcription
// endpoints.
func RegisterTranscriptRoutes(r *gin.Engine, src transcript.Source, enc *video.Encoder) {
	r.POST("/api/youtube-transcript", func(c *gin.Context) {
		handleYouTubeTranscript(c, src)
	})
	r.POST("/api/transcribe", func(c *gin.Context) {
		handleTranscribe(c, enc)
	})
}

type youtubeTranscriptRequest struct {
	VideoLink string `json:"videoLink"`
	Lang      string `json:"lang"`
}

// handleYouTubeTranscript fetches the caption track for a YouTube link and
// returns fully normalized segments.
func handleYouTubeTranscript(c *gin.Context, src transcript.Source) {
	if src == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transcript source not configured"})
		return
	}

	var req youtubeTranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	videoID := transcript.ExtractVideoID(req.VideoLink)
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "not a recognizable YouTube link"})
		return
	}

	segments, err := transcript.FetchWithFallback(c.Request.Context(), src, videoID, req.Lang)
	if err != nil {
		if errors.Is(err, transcript.ErrNoTranscript) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"videoId":    videoID,
		"transcript": segments,
	})
}

// handleTranscribe accepts an audio upload and returns a transcript for it.
// Real speech recognition is not wired up; the response carries a clearly
// labeled synthetic transcript sized to the audio duration.
func handleTranscribe(c *gin.Context, enc *video.Encoder) {
	if enc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "encoder not configured"})
		return
	}

	file, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}
	if file.Size > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		return
	}

	tempPath := filepath.Join(config.TempDir, fmt.Sprintf("transcribe_%d%s", time.Now().UnixMilli(), filepath.Ext(file.Filename)))
	if err := c.SaveUploadedFile(file, tempPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store upload"})
		return
	}
	defer os.Remove(tempPath)

	duration, err := enc.ProbeDuration(tempPath)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read audio duration"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	segments := transcript.Placeholder(duration, rng)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"transcript": segments,
		"duration":   duration,
		"synthetic":  true,
	})
}
