package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BASE_URL points at a running server, the suites are skipped when unset
	BaseURL   string `envconfig:"E2E_BASE_URL"`
	JWTSecret string `envconfig:"E2E_JWT_SECRET"`
	JWTIssuer string `envconfig:"E2E_JWT_ISSUER" default:"basecamp"`
	// E2E_DEBUG_JSON allows dumping full request/response bodies
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
