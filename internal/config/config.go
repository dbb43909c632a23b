// Package config provides YAML-based game configuration loading and
// difficulty presets for the survival game.
package config

import "github.com/vovakirdan/space-survival/internal/core"

// SurvivalConfig contains all tuning for a survival session.
type SurvivalConfig struct {
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Alien  AlienConfig  `yaml:"alien"`
	Ammo   AmmoConfig   `yaml:"ammo"`
}

// WorldConfig defines the square play field.
type WorldConfig struct {
	Size float64 `yaml:"size"` // Side length in world units
}

// PlayerConfig defines the ship and its weapon.
type PlayerConfig struct {
	Drag                 float64     `yaml:"drag"`      // Fraction of velocity kept per second
	MaxSpeed             float64     `yaml:"max_speed"` // World units per second
	Thrust               float64     `yaml:"thrust"`    // Velocity added per thrust input
	TurnStep             float64     `yaml:"turn_step"` // Degrees rotated per turn input
	Radius               float64     `yaml:"radius"`
	StartingAmmo         int         `yaml:"starting_ammo"`
	Cooldown             core.Millis `yaml:"cooldown_ms"`
	SafeRadius           float64     `yaml:"safe_radius"` // No alien spawns this close, per axis
	BulletSpeed          float64     `yaml:"bullet_speed"`
	BulletRadius         float64     `yaml:"bullet_radius"`
	MaxBullets           int         `yaml:"max_bullets"`
	WeaponActivationTime core.Millis `yaml:"weapon_activation_ms"`
}

// AlienConfig defines alien spawning and the difficulty ramp.
type AlienConfig struct {
	MaxSpawned   int         `yaml:"max_spawned"`
	Speed        float64     `yaml:"speed"`
	Radius       float64     `yaml:"radius"`
	StartingRate core.Millis `yaml:"starting_rate_ms"` // Initial inter-spawn interval
	MinRate      core.Millis `yaml:"min_rate_ms"`      // Interval floor
	RateStep     core.Millis `yaml:"rate_step_ms"`     // Interval decrease per spawn
}

// AmmoConfig defines the ammo pickup economy.
type AmmoConfig struct {
	PerClip    int         `yaml:"per_clip"`
	DropChance float64     `yaml:"drop_chance"` // 0.0 - 1.0
	Timeout    core.Millis `yaml:"timeout_ms"`  // Pickup lifetime
	MaxClips   int         `yaml:"max_clips"`
	Radius     float64     `yaml:"radius"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}
