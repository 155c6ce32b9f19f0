package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors Config with pointer fields so that only variables
// actually present in the environment overlay the current values.
type envConfig struct {
	StoreDSN             *string        `envconfig:"STORE_DSN"`
	SecretKey            *string        `envconfig:"SECRET_KEY"`
	AccessTokenValidity  *time.Duration `envconfig:"ACCESS_TOKEN_VALIDITY"`
	RefreshTokenValidity *time.Duration `envconfig:"REFRESH_TOKEN_VALIDITY"`
}

// parseEnv overlays Config fields from NIGHTOWL_-prefixed environment
// variables, e.g. NIGHTOWL_STORE_DSN or NIGHTOWL_ACCESS_TOKEN_VALIDITY=30m.
func parseEnv(config *Config) {
	var e envConfig
	if err := envconfig.Process("nightowl", &e); err != nil {
		panic(err)
	}

	if e.StoreDSN != nil {
		config.StoreDSN = *e.StoreDSN
	}
	if e.SecretKey != nil {
		config.SecretKey = *e.SecretKey
	}
	if e.AccessTokenValidity != nil {
		config.AccessTokenValidity = *e.AccessTokenValidity
	}
	if e.RefreshTokenValidity != nil {
		config.RefreshTokenValidity = *e.RefreshTokenValidity
	}
}
