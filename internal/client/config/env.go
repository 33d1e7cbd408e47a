package config

import (
	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the environment. A .env file in
// the working directory is loaded first when present; unset variables leave
// the current values in place.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}
