package articles

import (
	"context"
	"fmt"
	"time"

	readability "github.com/go-shiori/go-readability"
)

const extractorTimeout = 30 * time.Second

// Extractor pulls readable text from web pages so article links can serve
// as grounding context for generation.
type Extractor struct{}

// NewExtractor returns a page-text extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText fetches a page and returns its readable text content.
func (e *Extractor) ExtractText(ctx context.Context, pageURL string) (string, error) {
	if pageURL == "" {
		return "", fmt.Errorf("page URL is empty")
	}

	article, err := readability.FromURL(pageURL, extractorTimeout)
	if err != nil {
		return "", fmt.Errorf("readability extraction failed: %w", err)
	}

	return article.TextContent, nil
}
