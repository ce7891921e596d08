package config

import (
	"errors"

	"github.com/caarlos0/env/v11"

	"reachpay/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library. The
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the individual types in the configs package for
// default values and options. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line and to the tracing resource.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection. Environment variables
	// prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	Store   configs.Store   `envPrefix:"STORE_"`
	Custody configs.Custody `envPrefix:"CUSTODY_"`
	Oracle  configs.Oracle  `envPrefix:"ORACLE_"`
	Auth    configs.Auth    `envPrefix:"AUTH_"`
	Sweeper configs.Sweeper `envPrefix:"SWEEPER_"`
	Otel    configs.Otel    `envPrefix:"OTEL_"`
	Seed    configs.Seed    `envPrefix:"SEED_"`
}

// Load reads configuration from environment variables into a Config. If
// parsing fails, an error is returned. All fields are loaded with their
// specified defaults when no environment variable is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	driver, err := c.Store.Normalized()
	if err != nil {
		return err
	}
	if _, err = c.Custody.Key(); err != nil {
		return err
	}
	if driver == configs.StorePostgres && c.Custody.Secret == "" {
		return errors.New("CUSTODY_SECRET is required with the postgres store")
	}
	if c.Sweeper.Batch <= 0 {
		return errors.New("SWEEPER_BATCH must be positive")
	}
	return nil
}
