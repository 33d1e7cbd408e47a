package config

import "time"

// Config holds runtime settings for the toolshare CLI.
type Config struct {
	// ServerBaseURL is the root of the backend REST API, including the
	// fixed /api base path.
	ServerBaseURL string `env:"TOOLSHARE_SERVER_URL"`

	// RequestTimeout bounds every backend call.
	RequestTimeout time.Duration `env:"TOOLSHARE_REQUEST_TIMEOUT"`

	// DatabasePath locates the local sqlite file that persists the
	// credential between runs.
	DatabasePath string `env:"TOOLSHARE_DB_PATH"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "toolshare.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
