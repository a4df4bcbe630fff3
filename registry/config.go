package registry

import (
	"github.com/caarlos0/env/v11"
)

const defaultNumShards = 16

// Config controls how a Registry spreads its names.
type Config struct {
	NumShards int `env:"SHARED_INSTANCE_REGISTRY_SHARDS" envDefault:"16"` // default: 16
}

// NewConfig returns a Config, replacing non-positive values with defaults.
func NewConfig(numShards int) Config {
	if numShards <= 0 {
		numShards = defaultNumShards
	}
	return Config{NumShards: numShards}
}

// LoadConfigFromEnv reads the configuration from the environment, falling
// back to defaults when it is missing or malformed.
func LoadConfigFromEnv() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return NewConfig(0)
	}
	return NewConfig(cfg.NumShards)
}
