package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRacer loads Dodge Racer configuration.
// Search order: customPath -> ~/.racer/configs/racer.yaml -> ./configs/racer.yaml -> embedded default.
// Files only need to list the values they change; everything else keeps its default.
func LoadRacer(customPath string) (RacerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseRacer(data)
		if err != nil {
			return RacerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("racer.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseRacer(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/racer.yaml"); err == nil {
		if cfg, err := parseRacer(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseRacer(defaultRacerYAML)
	if err != nil {
		return DefaultRacerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseRacer decodes YAML on top of the defaults and validates the result.
func parseRacer(data []byte) (RacerConfig, error) {
	cfg := DefaultRacerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RacerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RacerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".racer", "configs", filename)
}
