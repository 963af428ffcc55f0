package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses the configuration from a YAML file.
func LoadFile(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Load(data)
}

// Load parses configuration from YAML bytes, applies defaults and validates.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	// Set defaults
	if cfg.Provider.ConnectionPoolSize == 0 {
		cfg.Provider.ConnectionPoolSize = DefaultPoolSize
	}
	for i := range cfg.Pools {
		if cfg.Pools[i].DiskType == "" {
			cfg.Pools[i].DiskType = "pd-ssd"
		}
		if cfg.Pools[i].Network == "" {
			cfg.Pools[i].Network = "global/networks/default"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
