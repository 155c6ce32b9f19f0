// Package config handles configuration for the NightOwl core, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings.
//
// Fields:
//   - StoreDSN: PostgreSQL DSN (pgx) for the record store. Empty selects the
//     in-memory backend.
//   - SecretKey: HMAC secret for signing access tokens (HS256). Do not use
//     the test default in prod.
//   - AccessTokenValidity / RefreshTokenValidity: token lifetimes.
type Config struct {
	StoreDSN             string
	SecretKey            string
	AccessTokenValidity  time.Duration
	RefreshTokenValidity time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.StoreDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidity = 15 * time.Minute
	c.RefreshTokenValidity = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
