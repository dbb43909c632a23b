package survival

import (
	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/ledger"
)

// SessionState is everything one play-through tracks.
// Rule functions take a SessionState and return the updated value;
// a restart replaces it with a fresh one.
type SessionState struct {
	CooldownUntil      core.Millis // Weapon may fire strictly after this
	Ammo               int
	Kills              int
	Score              int
	Alive              bool
	ShotsFired         int
	SessionStartTime   core.Millis
	AlienSpawnInterval core.Millis
	NextAlienSpawnAt   core.Millis // Next alien may spawn strictly after this
}

// NewSession returns the initial state of a session starting at now.
// The first alien is due immediately.
func NewSession(now core.Millis, cfg config.SurvivalConfig) SessionState {
	return SessionState{
		CooldownUntil:      now,
		Ammo:               cfg.Player.StartingAmmo,
		Alive:              true,
		SessionStartTime:   now,
		AlienSpawnInterval: cfg.Alien.StartingRate,
		NextAlienSpawnAt:   now,
	}
}

// Accuracy returns kills per shot, undefined when nothing was fired.
func (s SessionState) Accuracy() ledger.Accuracy {
	return ledger.ComputeAccuracy(s.Kills, s.ShotsFired)
}

// Elapsed returns the time since the session started.
func (s SessionState) Elapsed(now core.Millis) core.Millis {
	return now - s.SessionStartTime
}

// WeaponArmed reports whether the post-spawn grace period is over.
func WeaponArmed(s SessionState, now core.Millis, cfg config.PlayerConfig) bool {
	return s.Elapsed(now) > cfg.WeaponActivationTime
}

// TryFire applies a fire intent. It succeeds only while alive, after the
// weapon grace period, once the cooldown has passed, and with ammo left.
// On success ammo drops by one, shotsFired rises by one, and the cooldown restarts.
// A rejected intent returns s unchanged.
func TryFire(s SessionState, now core.Millis, cfg config.PlayerConfig) (SessionState, bool) {
	if !s.Alive || s.Ammo <= 0 {
		return s, false
	}
	if !WeaponArmed(s, now, cfg) || !gateOpen(now, s.CooldownUntil) {
		return s, false
	}

	s.Ammo--
	s.ShotsFired++
	s.CooldownUntil = now + cfg.Cooldown
	return s, true
}
