package survival

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
)

// AlienSpawnIntent describes an alien to instantiate. It is consumed immediately.
type AlienSpawnIntent struct {
	Position core.Vec2
	Velocity core.Vec2
}

// SpawnDirector picks where and how aliens enter the world.
type SpawnDirector struct {
	rng        *rand.Rand
	worldSize  float64
	safeRadius float64
	speed      float64
}

// NewSpawnDirector creates a director drawing from rng.
func NewSpawnDirector(rng *rand.Rand, cfg config.SurvivalConfig) *SpawnDirector {
	return &SpawnDirector{
		rng:        rng,
		worldSize:  cfg.World.Size,
		safeRadius: cfg.Player.SafeRadius,
		speed:      cfg.Alien.Speed,
	}
}

// SpawnPosition returns a uniformly random point in the world whose X and Y
// are each farther than the safe radius from the player's.
// Each axis is re-rolled on its own until it qualifies.
func (d *SpawnDirector) SpawnPosition(player core.Vec2) core.Vec2 {
	return core.V(d.axis(player.X), d.axis(player.Y))
}

func (d *SpawnDirector) axis(avoid float64) float64 {
	for {
		v := d.rng.Float64() * d.worldSize
		if math.Abs(v-avoid) > d.safeRadius {
			return v
		}
	}
}

// Intent builds a spawn intent: a safe position and a fixed-speed velocity
// along a uniformly random heading in [0, 2π).
func (d *SpawnDirector) Intent(player core.Vec2) AlienSpawnIntent {
	pos := d.SpawnPosition(player)
	heading := d.rng.Float64() * 2 * math.Pi
	return AlienSpawnIntent{
		Position: pos,
		Velocity: core.FromAngle(heading, d.speed),
	}
}

// SpawnDue reports whether an alien may spawn at now.
// Nothing spawns while every pool slot is in use.
func SpawnDue(s SessionState, now core.Millis, active, capacity int) bool {
	return s.Alive && gateOpen(now, s.NextAlienSpawnAt) && active < capacity
}

// AfterSpawn schedules the next spawn and tightens the interval by one step,
// never below the configured floor and never upward.
func AfterSpawn(s SessionState, now core.Millis, cfg config.AlienConfig) SessionState {
	s.NextAlienSpawnAt = now + s.AlienSpawnInterval

	next := s.AlienSpawnInterval - cfg.RateStep
	if next < cfg.MinRate {
		next = cfg.MinRate
	}
	if next < s.AlienSpawnInterval {
		s.AlienSpawnInterval = next
	}
	return s
}

// spawnAlien instantiates one alien away from the player and ramps the spawn rate.
// An exhausted pool leaves everything unchanged.
func (g *Game) spawnAlien(now core.Millis) {
	intent := g.director.Intent(g.ship.Pos)
	if _, ok := g.aliens.Acquire(Alien{Pos: intent.Position, Vel: intent.Velocity}); !ok {
		return
	}
	g.session = AfterSpawn(g.session, now, g.cfg.Alien)

	g.logger.Debug("alien spawned",
		"x", int(intent.Position.X), "y", int(intent.Position.Y),
		"active", g.aliens.Active(), "interval", int64(g.session.AlienSpawnInterval))
}
