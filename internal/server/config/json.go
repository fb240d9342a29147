package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/qwik2do/internal/flagx"
	"github.com/dmitrijs2005/qwik2do/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Interval fields use
// timex.Duration so the file may say "15m" or give integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
	S3GalleryPrefix              string         `json:"s3_gallery_prefix"`
	PixabayBaseURL               string         `json:"pixabay_base_url"`
	AccuWeatherBaseURL           string         `json:"accuweather_base_url"`
	WeatherCacheTTL              timex.Duration `json:"weather_cache_ttl"`
	UpstreamTimeout              timex.Duration `json:"upstream_timeout"`
	LogLevel                     string         `json:"log_level"`
}

func toJsonConfig(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:             c.EndpointAddrGRPC,
		DatabaseDSN:                  c.DatabaseDSN,
		SecretKey:                    c.SecretKey,
		AccessTokenValidityDuration:  timex.Duration{Duration: c.AccessTokenValidityDuration},
		RefreshTokenValidityDuration: timex.Duration{Duration: c.RefreshTokenValidityDuration},
		S3RootUser:                   c.S3RootUser,
		S3RootPassword:               c.S3RootPassword,
		S3Bucket:                     c.S3Bucket,
		S3Region:                     c.S3Region,
		S3BaseEndpoint:               c.S3BaseEndpoint,
		S3GalleryPrefix:              c.S3GalleryPrefix,
		PixabayBaseURL:               c.PixabayBaseURL,
		AccuWeatherBaseURL:           c.AccuWeatherBaseURL,
		WeatherCacheTTL:              timex.Duration{Duration: c.WeatherCacheTTL},
		UpstreamTimeout:              timex.Duration{Duration: c.UpstreamTimeout},
		LogLevel:                     c.LogLevel,
	}
}

// parseJson overlays config with the JSON file named by -c/-config.
// Keys missing from the file keep their current values. Read or decode
// errors panic, like flag errors do.
//
// API keys are deliberately absent from JsonConfig; see parseEnv.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := toJsonConfig(config)
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.S3GalleryPrefix = c.S3GalleryPrefix
	config.PixabayBaseURL = c.PixabayBaseURL
	config.AccuWeatherBaseURL = c.AccuWeatherBaseURL
	config.WeatherCacheTTL = c.WeatherCacheTTL.Duration
	config.UpstreamTimeout = c.UpstreamTimeout.Duration
	config.LogLevel = c.LogLevel
}
