// Package config loads runtime configuration for the toolshare CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via flags: -c or -config.
//  3. Environment variables (a .env file is honored when present):
//     TOOLSHARE_SERVER_URL, TOOLSHARE_REQUEST_TIMEOUT, TOOLSHARE_DB_PATH.
//  4. Command-line flags (-a, -t, -d), which override everything.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_base_url": "http://localhost:8080/api",
//	  "request_timeout": "10s",
//	  "database_path": "toolshare.db"
//	}
package config
