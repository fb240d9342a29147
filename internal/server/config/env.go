package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv. API keys are expected here rather
// than in the JSON file so they stay out of version control.
const (
	EnvDatabaseDSN       = "QWIK2DO_DATABASE_DSN"
	EnvSecretKey         = "QWIK2DO_SECRET_KEY"
	EnvS3RootUser        = "QWIK2DO_S3_ROOT_USER"
	EnvS3RootPassword    = "QWIK2DO_S3_ROOT_PASSWORD"
	EnvPixabayAPIKey     = "PIXABAY_API_KEY"
	EnvAccuWeatherAPIKey = "ACCUWEATHER_API_KEY"
	EnvWeatherCacheTTL   = "QWIK2DO_WEATHER_CACHE_TTL"
)

// parseEnv loads envFile into the process environment when it exists
// (variables already set are not overwritten) and copies the known
// variables into config. Unset variables leave the current value alone.
func parseEnv(config *Config, envFile string) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				panic(err)
			}
		}
	}

	setString := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString(&config.DatabaseDSN, EnvDatabaseDSN)
	setString(&config.SecretKey, EnvSecretKey)
	setString(&config.S3RootUser, EnvS3RootUser)
	setString(&config.S3RootPassword, EnvS3RootPassword)
	setString(&config.PixabayAPIKey, EnvPixabayAPIKey)
	setString(&config.AccuWeatherAPIKey, EnvAccuWeatherAPIKey)

	if v, ok := os.LookupEnv(EnvWeatherCacheTTL); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.WeatherCacheTTL = d
	}
}
