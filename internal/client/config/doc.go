// Package config loads runtime configuration for the qwik2do terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "online_check_interval": "3s",
//	  "database_dsn": "qwik2do.db",
//	  "geolocation_url": "https://ipapi.co/json/",
//	  "clock_interval": "1s",
//	  "call_timeout": "10s",
//	  "log_file": "qwik2do.log"
//	}
//
// The client holds no secrets; third-party keys live on the server.
package config
