package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.chicken/config.yaml -> ./configs/chicken.yaml -> embedded default.
// Files only need to contain the keys they override.
func Load(customPath string) (ChickenConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ChickenConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ChickenConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "chicken.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultChickenYAML)
	if err != nil {
		return DefaultChickenConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
func Parse(data []byte) (ChickenConfig, error) {
	cfg := DefaultChickenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChickenConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return ChickenConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c ChickenConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate rejects configurations the simulation cannot run with.
func (c ChickenConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %v out of range", c.World.GroundHeight))
	}
	if c.Eggs.Size <= 0 || c.Eggs.Size >= c.World.Width {
		errs = append(errs, fmt.Errorf("eggs.size %v out of range", c.Eggs.Size))
	}
	if c.Eggs.GravitySteps < 1 || c.Eggs.GravityDivisor <= 0 {
		errs = append(errs, errors.New("eggs gravity steps and divisor must be positive"))
	}
	if c.Levels.PoolCapacity < 1 {
		errs = append(errs, fmt.Errorf("levels.pool_capacity must be at least 1, got %d", c.Levels.PoolCapacity))
	}
	if c.Levels.BaseQuota < 1 || c.Levels.QuotaStep < 0 {
		errs = append(errs, errors.New("levels quota must start at 1 or more and never shrink"))
	}
	if c.Levels.SpeedFactor <= 0 || c.Levels.GravityFactor <= 0 {
		errs = append(errs, errors.New("levels speed and gravity factors must be positive"))
	}
	if c.Physics.SprintMultiplier <= 0 || c.Physics.BoostMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("physics multipliers must be positive, got sprint %v boost %v",
			c.Physics.SprintMultiplier, c.Physics.BoostMultiplier))
	}
	if c.Physics.MeteorGravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.meteor_gravity must be positive, got %v", c.Physics.MeteorGravity))
	}
	if c.Physics.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_delta must be positive, got %v", c.Physics.MaxDelta))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chicken", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *ChickenConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ball.SpeedX *= 0.75
		cfg.Ball.SpeedY *= 0.75
		cfg.Levels.SpeedFactor = 1.05
		cfg.Levels.GravityFactor = 1.05
	case DifficultyHard:
		cfg.Ball.SpeedX *= 1.25
		cfg.Ball.SpeedY *= 1.25
		cfg.Levels.SpeedFactor = 1.15
		cfg.Levels.GravityFactor = 1.2
	case DifficultyFixed:
		cfg.Levels.SpeedFactor = 1
		cfg.Levels.GravityFactor = 1
	}
}
