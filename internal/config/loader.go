package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival configuration.
// Search order: customPath -> ~/.survival/configs/survival.yaml -> ./configs/survival.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are allowed.
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("survival.yaml"), filepath.Join("configs", "survival.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fileCfg := DefaultSurvivalConfig()
		if err := yaml.Unmarshal(data, &fileCfg); err == nil && fileCfg.Validate() == nil {
			return fileCfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSurvivalYAML, &cfg); err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survival", "configs", filename)
}

// Validate reports settings the simulation cannot run with.
func (c SurvivalConfig) Validate() error {
	var errs []error

	if c.World.Size <= 0 {
		errs = append(errs, errors.New("world.size must be positive"))
	}
	// Spawn placement re-rolls each axis until it is outside the safe radius,
	// which needs room on at least one side of any player position.
	if 2*c.Player.SafeRadius >= c.World.Size {
		errs = append(errs, fmt.Errorf("player.safe_radius %.0f leaves no spawn room in world of size %.0f",
			c.Player.SafeRadius, c.World.Size))
	}
	if c.Player.MaxBullets <= 0 {
		errs = append(errs, errors.New("player.max_bullets must be positive"))
	}
	if c.Alien.MaxSpawned <= 0 {
		errs = append(errs, errors.New("alien.max_spawned must be positive"))
	}
	if c.Ammo.MaxClips <= 0 {
		errs = append(errs, errors.New("ammo.max_clips must be positive"))
	}
	if c.Ammo.DropChance < 0 || c.Ammo.DropChance > 1 {
		errs = append(errs, fmt.Errorf("ammo.drop_chance %.2f outside [0, 1]", c.Ammo.DropChance))
	}
	if c.Alien.MinRate > c.Alien.StartingRate {
		errs = append(errs, errors.New("alien.min_rate_ms exceeds alien.starting_rate_ms"))
	}
	if c.Player.Drag <= 0 || c.Player.Drag > 1 {
		errs = append(errs, fmt.Errorf("player.drag %.2f outside (0, 1]", c.Player.Drag))
	}

	return errors.Join(errs...)
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
// Fixed keeps the starting spawn interval for the whole session.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Alien.StartingRate += cfg.Alien.StartingRate / 3
		cfg.Alien.MinRate += cfg.Alien.MinRate / 2
		cfg.Player.StartingAmmo += cfg.Player.StartingAmmo / 2
	case DifficultyHard:
		cfg.Alien.StartingRate -= cfg.Alien.StartingRate / 3
		cfg.Alien.MinRate -= cfg.Alien.MinRate / 4
		cfg.Ammo.DropChance *= 0.75
	case DifficultyFixed:
		cfg.Alien.RateStep = 0
	}
}
