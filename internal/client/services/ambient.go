package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/qwik2do/internal/client/client"
	"github.com/dmitrijs2005/qwik2do/internal/client/models"
)

var ErrNoLocation = errors.New("location unavailable")

// AmbientService gathers the cosmetic data of the dashboard. The photo and
// the weather come through the server; the location is looked up by IP
// straight from the client, since only the client knows its own address.
type AmbientService struct {
	client         client.Client
	http           *http.Client
	geolocationURL string
}

type ipapiResponse struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Error     bool     `json:"error"`
	Reason    string   `json:"reason"`
}

func NewAmbientService(c client.Client, httpClient *http.Client, geolocationURL string) *AmbientService {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &AmbientService{client: c, http: httpClient, geolocationURL: geolocationURL}
}

func (s *AmbientService) BackgroundImage(ctx context.Context) (string, error) {
	url, err := s.client.BackgroundImage(ctx)
	if err != nil {
		return "", fmt.Errorf("background image error: %w", err)
	}
	return url, nil
}

// Geolocation resolves the approximate position of this machine from its
// public IP address.
func (s *AmbientService) Geolocation(ctx context.Context) (*models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.geolocationURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("geolocation: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("geolocation: failed to decode response: %w", err)
	}
	if out.Error {
		return nil, fmt.Errorf("geolocation: %w: %s", ErrNoLocation, out.Reason)
	}
	if out.Latitude == nil || out.Longitude == nil {
		return nil, fmt.Errorf("geolocation: %w", ErrNoLocation)
	}

	return &models.Location{Latitude: *out.Latitude, Longitude: *out.Longitude}, nil
}

func (s *AmbientService) Weather(ctx context.Context, loc models.Location) (*models.Weather, error) {
	w, err := s.client.Weather(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("weather error: %w", err)
	}
	return w, nil
}
