package articles

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedPresets maps friendly names to RSS feed URLs used for topic
// suggestions.
var FeedPresets = map[string]string{
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
	"dev": "https://dev.to/feed",
}

// DefaultFeedPreset is used when a request names no feed.
const DefaultFeedPreset = "hn"

// ResolveFeedURL resolves a feed identifier to a URL. Preset names map to
// their configured URL; anything else is assumed to be a direct feed URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// Topic is one headline suggestion pulled from a feed.
type Topic struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}

// FetchTopics retrieves up to maxCount headline suggestions from an RSS or
// Atom feed. Suggested titles are meant to be fed back as generation topics.
func FetchTopics(feedURL string, maxCount int) ([]Topic, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := len(feed.Items)
	if count > maxCount {
		count = maxCount
	}

	topics := make([]Topic, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		topics = append(topics, Topic{
			Title:       item.Title,
			URL:         item.Link,
			PublishedAt: publishedAt,
		})
	}

	return topics, nil
}
