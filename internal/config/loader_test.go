package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var fromYAML SurvivalConfig
	if err := yaml.Unmarshal(DefaultYAML(), &fromYAML); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}

	if fromYAML != DefaultSurvivalConfig() {
		t.Errorf("embedded defaults differ from DefaultSurvivalConfig():\nyaml: %+v\ncode: %+v",
			fromYAML, DefaultSurvivalConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultSurvivalConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadSurvivalCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survival.yaml")
	data := []byte("alien:\n  max_spawned: 3\nammo:\n  drop_chance: 1.0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSurvival(path)
	if err != nil {
		t.Fatalf("LoadSurvival() failed: %v", err)
	}

	if cfg.Alien.MaxSpawned != 3 {
		t.Errorf("MaxSpawned = %d, expected 3", cfg.Alien.MaxSpawned)
	}
	if cfg.Ammo.DropChance != 1.0 {
		t.Errorf("DropChance = %f, expected 1.0", cfg.Ammo.DropChance)
	}
	// Untouched fields keep their defaults
	if cfg.Player.StartingAmmo != 50 {
		t.Errorf("StartingAmmo = %d, expected default 50", cfg.Player.StartingAmmo)
	}
}

func TestLoadSurvivalErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSurvival(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSurvival(bad); err == nil {
		t.Error("expected parse error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  safe_radius: 600\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSurvival(invalid); err == nil {
		t.Error("expected validation error for safe radius larger than half the world")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SurvivalConfig)
	}{
		{"zero world", func(c *SurvivalConfig) { c.World.Size = 0 }},
		{"no bullets", func(c *SurvivalConfig) { c.Player.MaxBullets = 0 }},
		{"no aliens", func(c *SurvivalConfig) { c.Alien.MaxSpawned = 0 }},
		{"no clips", func(c *SurvivalConfig) { c.Ammo.MaxClips = 0 }},
		{"drop chance above one", func(c *SurvivalConfig) { c.Ammo.DropChance = 1.5 }},
		{"min rate above start", func(c *SurvivalConfig) { c.Alien.MinRate = 5000 }},
		{"zero drag", func(c *SurvivalConfig) { c.Player.Drag = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSurvivalConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestApplySurvivalPreset(t *testing.T) {
	base := DefaultSurvivalConfig()

	easy := base
	ApplySurvivalPreset(&easy, DifficultyEasy)
	if easy.Alien.StartingRate <= base.Alien.StartingRate {
		t.Errorf("easy should spawn slower, rate %d vs %d", easy.Alien.StartingRate, base.Alien.StartingRate)
	}

	hard := base
	ApplySurvivalPreset(&hard, DifficultyHard)
	if hard.Alien.StartingRate >= base.Alien.StartingRate {
		t.Errorf("hard should spawn faster, rate %d vs %d", hard.Alien.StartingRate, base.Alien.StartingRate)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset should stay valid: %v", err)
	}

	fixed := base
	ApplySurvivalPreset(&fixed, DifficultyFixed)
	if fixed.Alien.RateStep != 0 {
		t.Errorf("fixed should disable the spawn ramp, step = %d", fixed.Alien.RateStep)
	}

	normal := base
	ApplySurvivalPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"", DifficultyNormal, true},
		{"easy", DifficultyEasy, true},
		{"fixed", DifficultyFixed, true},
		{"nightmare", "", false},
	}
	for _, tc := range tests {
		got, ok := ParsePreset(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParsePreset(%q) = (%q, %v), expected (%q, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
