package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"clipscribe/config"
)

// CachedSource wraps a Source with a Redis cache keyed by video ID and
// language. Cache failures degrade to a direct fetch; the cache is an
// optimization, never a correctness dependency.
type CachedSource struct {
	inner Source
	rdb   *redis.Client
}

// NewCachedSource builds a caching decorator around src.
func NewCachedSource(src Source, rdb *redis.Client) *CachedSource {
	return &CachedSource{inner: src, rdb: rdb}
}

func cacheKey(videoID, lang string) string {
	return fmt.Sprintf("transcript:%s:%s", videoID, lang)
}

// Fetch returns the cached transcript when present, otherwise fetches from
// the inner source and stores the result.
func (c *CachedSource) Fetch(ctx context.Context, videoID, lang string) ([]Segment, error) {
	key := cacheKey(videoID, lang)

	if data, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		var segments []Segment
		if err := json.Unmarshal(data, &segments); err == nil && len(segments) > 0 {
			return segments, nil
		}
	} else if err != redis.Nil {
		log.Printf("transcript cache read failed for %s: %v", videoID, err)
	}

	segments, err := c.inner.Fetch(ctx, videoID, lang)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(segments); err == nil {
		if err := c.rdb.Set(ctx, key, data, config.TranscriptCacheTTL).Err(); err != nil {
			log.Printf("transcript cache write failed for %s: %v", videoID, err)
		}
	}
	return segments, nil
}
