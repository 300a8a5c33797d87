package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// APIClient is a thin HTTP client for the generation API
type APIClient struct {
	baseURL string
	client  *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 2 * time.Minute,
		},
	}
}

// Post is one generated social post
type Post struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Topic   string   `json:"topic"`
	Mode    string   `json:"mode"`
	Count   int      `json:"count"`
	Exclude []string `json:"exclude,omitempty"`
}

type generateResponse struct {
	Tweets []Post `json:"tweets"`
	Error  string `json:"error,omitempty"`
}

// Generate requests a batch of posts for the topic
func (c *APIClient) Generate(topic, mode string, count int, exclude []string) ([]Post, error) {
	body, err := json.Marshal(generateRequest{
		Topic:   topic,
		Mode:    mode,
		Count:   count,
		Exclude: exclude,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.baseURL+"/api/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return result.Tweets, nil
}
