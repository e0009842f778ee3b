// Package config loads lineage settings from a YAML file with
// environment overrides. Command line flags take precedence over
// everything loaded here; the merge happens in the cmd layer.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds settings shared by the lineage commands.
type Config struct {
	// Color controls styled output: auto, always or never.
	Color string `mapstructure:"color"`
	// Output selects the show encoding: text, json or yaml.
	Output string `mapstructure:"output"`
	// LineNumbers adds a line number gutter to context output.
	LineNumbers bool `mapstructure:"line_numbers"`
}

// Default returns the configuration used when no file and no
// environment overrides are present.
func Default() *Config {
	return &Config{
		Color:  "auto",
		Output: "text",
	}
}

// Load reads the configuration from path. When path is empty the
// default locations are searched instead: .lineage.yaml in the current
// directory, then in the home directory. A missing file is only an
// error when a path was given explicitly. Environment variables with
// the LINEAGE_ prefix override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("color", "auto")
	v.SetDefault("output", "text")
	v.SetDefault("line_numbers", false)

	v.SetEnvPrefix("LINEAGE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".lineage")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
