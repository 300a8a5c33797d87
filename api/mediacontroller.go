package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterMediaRoutes registers streaming access to processed outputs. Only
// files inside uploadsDir are served.
func RegisterMediaRoutes(r *gin.Engine, uploadsDir string) {
	r.GET("/api/video-preview", func(c *gin.Context) {
		serveVideo(c, uploadsDir, false)
	})
	r.GET("/api/video-download", func(c *gin.Context) {
		serveVideo(c, uploadsDir, true)
	})
}

func serveVideo(c *gin.Context, uploadsDir string, attachment bool) {
	requested := c.Query("path")
	if requested == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	path, ok := resolveInside(uploadsDir, requested)
	if !ok {
		c.JSON(http.StatusForbidden, gin.H{"error": "path is outside the uploads directory"})
		return
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.Header("Content-Type", "video/mp4")
	if attachment {
		c.FileAttachment(path, filepath.Base(path))
		return
	}
	c.Header("Content-Disposition", "inline")
	c.File(path)
}

// resolveInside canonicalizes requested and confirms it stays within baseDir.
func resolveInside(baseDir, requested string) (string, bool) {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return "", false
	}
	path, err := filepath.Abs(requested)
	if err != nil {
		return "", false
	}

	rel, err := filepath.Rel(base, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return path, true
}
