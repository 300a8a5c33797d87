package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clipscribe/articles"
	"clipscribe/config"
)

// RegisterTopicRoutes registers the topic suggestion endpoint.
func RegisterTopicRoutes(r *gin.Engine) {
	r.GET("/api/topics", handleGetTopics)
}

// handleGetTopics returns headline suggestions from an RSS feed. The feed
// query names a preset or a direct feed URL.
func handleGetTopics(c *gin.Context) {
	feed := c.Query("feed")
	if feed == "" {
		feed = articles.DefaultFeedPreset
	}

	count := config.DefaultTopicCount
	if v := c.Query("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= config.MaxTopicCount {
			count = n
		}
	}

	topics, err := articles.FetchTopics(articles.ResolveFeedURL(feed), count)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}
