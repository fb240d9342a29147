package ambient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

// AccuWeatherClient resolves a location key for a coordinate pair and then
// reads current conditions for it.
type AccuWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

type accuLocation struct {
	Key           string `json:"Key"`
	LocalizedName string `json:"LocalizedName"`
}

type accuConditions struct {
	WeatherText string `json:"WeatherText"`
	Temperature struct {
		Metric struct {
			Value float64 `json:"Value"`
			Unit  string  `json:"Unit"`
		} `json:"Metric"`
	} `json:"Temperature"`
}

func NewAccuWeatherClient(apiKey, baseURL string, client *http.Client) *AccuWeatherClient {
	if client == nil {
		client = &http.Client{}
	}
	return &AccuWeatherClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

func (c *AccuWeatherClient) Current(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("accuweather: api key not set")
	}

	key, err := c.locationKey(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("apikey", c.apiKey)

	var conditions []accuConditions
	u := fmt.Sprintf("%s/currentconditions/v1/%s?%s", c.baseURL, url.PathEscape(key), q.Encode())
	if err := getJSON(ctx, c.client, u, &conditions); err != nil {
		return nil, fmt.Errorf("accuweather conditions: %w", err)
	}
	if len(conditions) == 0 {
		return nil, fmt.Errorf("accuweather conditions: %w", ErrNoResults)
	}

	return &models.Weather{
		Description:  conditions[0].WeatherText,
		TemperatureC: conditions[0].Temperature.Metric.Value,
	}, nil
}

func (c *AccuWeatherClient) locationKey(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("q", fmt.Sprintf("%g,%g", lat, lon))

	var loc accuLocation
	if err := getJSON(ctx, c.client, c.baseURL+"/locations/v1/cities/geoposition/search?"+q.Encode(), &loc); err != nil {
		return "", fmt.Errorf("accuweather location: %w", err)
	}
	if loc.Key == "" {
		return "", fmt.Errorf("accuweather location: %w", ErrNoResults)
	}
	return loc.Key, nil
}
