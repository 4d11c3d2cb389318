// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// ex: REASSEMBLE_DELIMITER
const EnvPrefix = "REASSEMBLE"

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and the command line
type Config struct {
	// Delimiter between the fragments on an input line
	Delimiter string `mapstructure:"delimiter"`

	// Workers is the number of lines reassembled at once
	Workers int `mapstructure:"workers"`

	// Verbose logs every reassembled line
	Verbose bool `mapstructure:"verbose"`

	// Out is the path of an optional report of the run
	Out string `mapstructure:"out"`

	// Format of the report, json or yaml
	Format string `mapstructure:"format"`
}

// SetDefaults registers the default settings with v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("delimiter", ";")
	v.SetDefault("workers", runtime.NumCPU())
	v.SetDefault("verbose", false)
	v.SetDefault("out", "")
	v.SetDefault("format", "json")
}

// New returns a new Config populated by the global Viper's settings
func New() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper reads settings from a YAML settings file (if "settings" is set),
// the environment and flags bound to v, in increasing precedence
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that the settings can be used for a run
func (c *Config) Validate() error {
	if c.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	switch strings.ToLower(c.Format) {
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown report format %q, expected json or yaml", c.Format)
	}
	return nil
}
