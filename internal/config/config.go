package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Rice mirrors the environment variables persisted by setup. Keys left unset
// fall back to the same defaults the wizard offers.
type Rice struct {
	StorageInstanceURL string `env:"STORAGE_INSTANCE_URL" envDefault:"localhost:50051"`
	StorageUser        string `env:"STORAGE_USER" envDefault:"admin"`
	StorageAuthToken   string `env:"STORAGE_AUTH_TOKEN"`
	StorageHTTPPort    string `env:"STORAGE_HTTP_PORT" envDefault:"3000"`
	StateInstanceURL   string `env:"STATE_INSTANCE_URL" envDefault:"localhost:50051"`
	StateAuthToken     string `env:"STATE_AUTH_TOKEN"`
	StateRunID         string `env:"STATE_RUN_ID" envDefault:"default"`
}

// Load reads the Rice configuration from the process environment. Callers
// load the env file first so persisted values are visible here.
func Load() (Rice, error) {
	var cfg Rice
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("error reading rice environment: %w", err)
	}
	return cfg, nil
}
