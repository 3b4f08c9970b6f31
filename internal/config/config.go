// Package config loads service configuration from YAML with sensible
// defaults, so the binary runs with no config file at all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`

	// ExtraKeywords extends the categorizer's keyword lists per category
	// name. Unknown category names are ignored; matching order is fixed
	// and cannot be changed from config.
	ExtraKeywords map[string][]string `yaml:"extra_keywords"`
}

// ServerConfig configures the HTTP boundary.
type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			MaxUploadMB: 32,
		},
	}
}

// Load reads YAML from path, applied on top of defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = Default().Server.Addr
	}
	if cfg.Server.MaxUploadMB <= 0 {
		cfg.Server.MaxUploadMB = Default().Server.MaxUploadMB
	}
	return cfg, nil
}
