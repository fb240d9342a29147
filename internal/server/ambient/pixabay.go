// Package ambient talks to the third-party providers behind the dashboard's
// cosmetic data: Pixabay photo search, an S3 gallery of fallback photos and
// AccuWeather current conditions. API keys stay on the server.
package ambient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strings"
)

var ErrNoResults = errors.New("provider returned no results")

// PixabayClient searches Pixabay for landscape photos.
type PixabayClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	intn    func(int) int
}

type pixabayResponse struct {
	Total int `json:"total"`
	Hits  []struct {
		LargeImageURL string `json:"largeImageURL"`
		WebFormatURL  string `json:"webformatURL"`
	} `json:"hits"`
}

func NewPixabayClient(apiKey, baseURL string, client *http.Client) *PixabayClient {
	if client == nil {
		client = &http.Client{}
	}
	return &PixabayClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		intn:    rand.IntN,
	}
}

// RandomImage returns the URL of a random hit for a horizontal landscape
// photo search.
func (c *PixabayClient) RandomImage(ctx context.Context) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("pixabay: api key not set")
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", "landscape")
	q.Set("orientation", "horizontal")
	q.Set("image_type", "photo")

	var resp pixabayResponse
	if err := getJSON(ctx, c.client, c.baseURL+"/api/?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("pixabay: %w", err)
	}

	if len(resp.Hits) == 0 {
		return "", fmt.Errorf("pixabay: %w", ErrNoResults)
	}

	hit := resp.Hits[c.intn(len(resp.Hits))]
	if hit.LargeImageURL != "" {
		return hit.LargeImageURL, nil
	}
	if hit.WebFormatURL != "" {
		return hit.WebFormatURL, nil
	}
	return "", fmt.Errorf("pixabay: %w", ErrNoResults)
}

// getJSON performs a GET and decodes a 200 response body into out.
func getJSON(ctx context.Context, client *http.Client, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
