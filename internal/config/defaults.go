package config

import (
	_ "embed"
)

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultSurvivalConfig returns the hardcoded default configuration.
// It mirrors defaults/survival.yaml and is used if the embedded file is unusable.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		World: WorldConfig{
			Size: 1000,
		},
		Player: PlayerConfig{
			Drag:                 0.59,
			MaxSpeed:             170,
			Thrust:               40,
			TurnStep:             15,
			Radius:               16,
			StartingAmmo:         50,
			Cooldown:             300,
			SafeRadius:           120,
			BulletSpeed:          500,
			BulletRadius:         4,
			MaxBullets:           30,
			WeaponActivationTime: 500,
		},
		Alien: AlienConfig{
			MaxSpawned:   10,
			Speed:        125,
			Radius:       16,
			StartingRate: 3000,
			MinRate:      800,
			RateStep:     100,
		},
		Ammo: AmmoConfig{
			PerClip:    10,
			DropChance: 0.3,
			Timeout:    10000,
			MaxClips:   10,
			Radius:     14,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSurvivalYAML
}
