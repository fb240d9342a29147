package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the qwik2do terminal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - OnlineCheckInterval: how often the sign-in prompt checks whether the server is reachable.
//   - DatabaseDSN: SQLite file holding the persisted session.
//   - GeolocationURL: IP geolocation endpoint used for the weather widget.
//   - FallbackBackgroundURL: shown when no background photo can be fetched.
//   - ClockInterval: refresh period of the dashboard clock.
//   - CallTimeout: per-call limit for dashboard fetches; 0 means none.
//   - TimeFormat / DateFormat: Go layouts for the clock and the long date.
//   - LogFile / LogLevel: the dashboard owns the terminal, so logs go to a file.
type Config struct {
	ServerEndpointAddr    string
	OnlineCheckInterval   time.Duration
	DatabaseDSN           string
	GeolocationURL        string
	FallbackBackgroundURL string
	ClockInterval         time.Duration
	CallTimeout           time.Duration
	TimeFormat            string
	DateFormat            string
	LogFile               string
	LogLevel              string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseDSN = "qwik2do.db"
	c.GeolocationURL = "https://ipapi.co/json/"
	c.FallbackBackgroundURL = "/images/fallback-bg.jpg"
	c.ClockInterval = time.Second
	c.CallTimeout = 0
	c.TimeFormat = "15:04:05"
	c.DateFormat = "Monday, January 2, 2006"
	c.LogFile = "qwik2do.log"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	args := os.Args[1:]
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
