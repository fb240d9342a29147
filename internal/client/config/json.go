package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/qwik2do/internal/flagx"
	"github.com/dmitrijs2005/qwik2do/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration so they can be written as "3s" or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr    string         `json:"server_endpoint_addr"`
	OnlineCheckInterval   timex.Duration `json:"online_check_interval"`
	DatabaseDSN           string         `json:"database_dsn"`
	GeolocationURL        string         `json:"geolocation_url"`
	FallbackBackgroundURL string         `json:"fallback_background_url"`
	ClockInterval         timex.Duration `json:"clock_interval"`
	CallTimeout           timex.Duration `json:"call_timeout"`
	TimeFormat            string         `json:"time_format"`
	DateFormat            string         `json:"date_format"`
	LogFile               string         `json:"log_file"`
	LogLevel              string         `json:"log_level"`
}

func toJsonConfig(c *Config) *JsonConfig {
	return &JsonConfig{
		ServerEndpointAddr:    c.ServerEndpointAddr,
		OnlineCheckInterval:   timex.Duration{Duration: c.OnlineCheckInterval},
		DatabaseDSN:           c.DatabaseDSN,
		GeolocationURL:        c.GeolocationURL,
		FallbackBackgroundURL: c.FallbackBackgroundURL,
		ClockInterval:         timex.Duration{Duration: c.ClockInterval},
		CallTimeout:           timex.Duration{Duration: c.CallTimeout},
		TimeFormat:            c.TimeFormat,
		DateFormat:            c.DateFormat,
		LogFile:               c.LogFile,
		LogLevel:              c.LogLevel,
	}
}

// parseJson overlays cfg with the JSON file named by -c/-config. Keys missing
// from the file keep their current values. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := toJsonConfig(cfg)
	if err := json.Unmarshal(data, jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	cfg.DatabaseDSN = jc.DatabaseDSN
	cfg.GeolocationURL = jc.GeolocationURL
	cfg.FallbackBackgroundURL = jc.FallbackBackgroundURL
	cfg.ClockInterval = jc.ClockInterval.Duration
	cfg.CallTimeout = jc.CallTimeout.Duration
	cfg.TimeFormat = jc.TimeFormat
	cfg.DateFormat = jc.DateFormat
	cfg.LogFile = jc.LogFile
	cfg.LogLevel = jc.LogLevel
}
