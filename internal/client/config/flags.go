package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/qwik2do/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-i int      online check interval, seconds
//	-d string   SQLite session database
//	-t int      dashboard call timeout, seconds (0 = none)
//	-f string   log file
//	-l string   log level
//
// Flags not listed here are dropped by flagx.FilterArgs first.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-d", "-t", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "session database file")
	callTimeout := fs.Int("t", int(cfg.CallTimeout.Seconds()), "dashboard call timeout (in seconds, 0 = none)")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	cfg.CallTimeout = time.Duration(*callTimeout) * time.Second
}
