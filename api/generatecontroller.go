package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clipscribe/config"
	"clipscribe/generate"
	"clipscribe/textgen"
)

// RegisterGenerateRoutes registers post-generation endpoints.
func RegisterGenerateRoutes(r *gin.Engine, svc *generate.Service) {
	r.POST("/api/generate", func(c *gin.Context) {
		handleGenerate(c, svc)
	})
}

// handleGenerate produces a batch of short posts for a topic or link.
// Upstream generator failures map to 502; an empty usable batch is an
// internal error.
func handleGenerate(c *gin.Context, svc *generate.Service) {
	if svc == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "generation service not configured"})
		return
	}

	var req generate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), config.GenerationTimeout)
	defer cancel()

	posts, err := svc.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, generate.ErrBadInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, textgen.ErrUpstream):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"tweets": posts})
}
