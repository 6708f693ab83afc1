package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Portal configures the client's outbound surfaces: the claim backend and the
// address-suggestion service. Values come from the environment; the defaults
// match the deployed portal's behavior.
type Portal struct {
	APIBaseURL      string        `env:"PORTAL_API_BASE_URL" envDefault:"http://localhost:8085/api"`
	AddressEndpoint string        `env:"PORTAL_ADDRESS_ENDPOINT" envDefault:"https://nominatim.openstreetmap.org/search"`
	DefaultTimeout  time.Duration `env:"PORTAL_TIMEOUT" envDefault:"15s"`
	RegisterTimeout time.Duration `env:"PORTAL_REGISTER_TIMEOUT" envDefault:"20s"`
	SubmitTimeout   time.Duration `env:"PORTAL_SUBMIT_TIMEOUT" envDefault:"60s"`
	WarmupTimeout   time.Duration `env:"PORTAL_WARMUP_TIMEOUT" envDefault:"3500ms"`
}

// LoadPortalFromEnv parses the portal configuration from the environment.
func LoadPortalFromEnv() (Portal, error) {
	var cfg Portal
	if err := env.Parse(&cfg); err != nil {
		return Portal{}, fmt.Errorf("parse portal config: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return Portal{}, fmt.Errorf("PORTAL_API_BASE_URL must not be empty")
	}
	return cfg, nil
}
