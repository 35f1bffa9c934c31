package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds process-level settings sourced from TIMEKEEP_* environment
// variables.
type Config struct {
	// Input is the default input path; "-" means stdin.
	Input string `mapstructure:"input"`
	// Debug is the default debug level; zero disables tracing.
	Debug int `mapstructure:"debug"`
}

// Load reads the environment, falling back to defaults for unset values.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("timekeep")
	v.AutomaticEnv()
	v.SetDefault("input", "-")
	v.SetDefault("debug", 0)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment config: %w", err)
	}
	return cfg, nil
}
