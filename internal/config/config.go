// Package config loads barline demo and render settings from global config,
// local config, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the barline CLI configuration
type Configuration struct {
	Width              int     `koanf:"width" validate:"min=0,max=4096"`        // 0 = autodetect
	TrueColor          bool    `koanf:"true_color"`                             // 24-bit gradient sweep
	GradientHue        float64 `koanf:"gradient_hue" validate:"min=0,max=360"`  // gradient hue, degrees
	GradientSaturation float64 `koanf:"gradient_saturation" validate:"min=0,max=1"`
	UpdateDelayMs      int     `koanf:"update_delay_ms" validate:"min=0,max=10000"` // demo pacing
	MarkerDir          string  `koanf:"marker_dir"`                             // "" = system temp dir
	Workers            int     `koanf:"workers" validate:"min=1,max=64"`        // workers demo process count
	Total              int     `koanf:"total" validate:"min=1"`                 // demo unit count
}

// Load loads configuration from global, local, and environment sources
// Priority: Environment variables > Local config > Global config > Defaults
func Load(localConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	// Apply defaults first
	defaults := GetDefaults()
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Load global config if it exists
	homeDir, err := os.UserHomeDir()
	if err == nil {
		globalPath := filepath.Join(homeDir, ".barline", "config.json")
		if _, err := os.Stat(globalPath); err == nil {
			if err := k.Load(file.Provider(globalPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load global config: %w", err)
			}
		}
	}

	// Load local config if it exists
	if localConfigPath != "" {
		if _, err := os.Stat(localConfigPath); err == nil {
			if err := k.Load(file.Provider(localConfigPath), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load local config: %w", err)
			}
		}
	}

	// Override with environment variables (highest priority)
	k.Load(env.Provider("BARLINE_", ".", envTransform), nil)

	// Unmarshal into struct
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// envTransform converts environment variable names to config keys
// Example: BARLINE_UPDATE_DELAY_MS -> update_delay_ms
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "BARLINE_"))
}
