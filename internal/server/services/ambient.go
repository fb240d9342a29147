package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/common"
	"github.com/dmitrijs2005/qwik2do/internal/server/models"
)

const (
	SourcePixabay = "pixabay"
	SourceGallery = "gallery"
)

// ImageProvider returns the URL of some landscape photo.
type ImageProvider interface {
	RandomImage(ctx context.Context) (string, error)
}

// WeatherProvider reads current conditions at a coordinate pair.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (*models.Weather, error)
}

type cachedWeather struct {
	weather *models.Weather
	expires time.Time
}

// AmbientService proxies the dashboard's photo and weather lookups. Both
// are best effort; any provider failure surfaces as common.ErrorUpstream.
type AmbientService struct {
	photos  ImageProvider
	gallery ImageProvider
	weather WeatherProvider
	timeout time.Duration
	ttl     time.Duration
	now     func() time.Time

	mu    sync.Mutex
	cache map[string]cachedWeather
}

// NewAmbientService wires the providers. gallery may be nil. A zero ttl
// disables the weather cache so every call reaches the provider.
func NewAmbientService(photos, gallery ImageProvider, weather WeatherProvider, timeout, ttl time.Duration) *AmbientService {
	return &AmbientService{
		photos:  photos,
		gallery: gallery,
		weather: weather,
		timeout: timeout,
		ttl:     ttl,
		now:     time.Now,
		cache:   map[string]cachedWeather{},
	}
}

func (s *AmbientService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

// BackgroundImage asks Pixabay first and falls back to the gallery bucket.
func (s *AmbientService) BackgroundImage(ctx context.Context) (*models.BackgroundImage, error) {
	var errs []error

	for _, p := range []struct {
		source   string
		provider ImageProvider
	}{
		{SourcePixabay, s.photos},
		{SourceGallery, s.gallery},
	} {
		if p.provider == nil {
			continue
		}
		cctx, cancel := s.withTimeout(ctx)
		url, err := p.provider.RandomImage(cctx)
		cancel()
		if err == nil {
			return &models.BackgroundImage{URL: url, Source: p.source}, nil
		}
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: no image provider configured", common.ErrorUpstream)
	}
	return nil, fmt.Errorf("%w: %w", common.ErrorUpstream, errors.Join(errs...))
}

// Weather returns current conditions near lat/lon. With a cache TTL set,
// readings are shared between coordinates that agree to two decimals.
func (s *AmbientService) Weather(ctx context.Context, lat, lon float64) (*models.Weather, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", common.ErrorValidation)
	}

	key := fmt.Sprintf("%.2f,%.2f", lat, lon)
	if w, ok := s.cached(key); ok {
		return w, nil
	}

	cctx, cancel := s.withTimeout(ctx)
	defer cancel()

	w, err := s.weather.Current(cctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrorUpstream, err)
	}

	if s.ttl > 0 {
		s.store(key, w)
	}
	return w, nil
}

// store caches w under key and drops every expired entry, so coordinates
// that are never asked for again do not pile up.
func (s *AmbientService) store(key string, w *models.Weather) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for k, c := range s.cache {
		if !now.Before(c.expires) {
			delete(s.cache, k)
		}
	}
	s.cache[key] = cachedWeather{weather: w, expires: now.Add(s.ttl)}
}

func (s *AmbientService) cached(key string) (*models.Weather, bool) {
	if s.ttl <= 0 {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.cache[key]
	if !ok {
		return nil, false
	}
	if !s.now().Before(c.expires) {
		delete(s.cache, key)
		return nil, false
	}
	return c.weather, true
}
