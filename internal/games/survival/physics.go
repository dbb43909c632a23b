package survival

import (
	"math"

	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
)

// Ship is the player's body.
type Ship struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Angle float64 // Heading in radians, 0 points along +X
}

// Alien is a hostile drifting through the world.
type Alien struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Bullet is a shot in flight.
type Bullet struct {
	Pos core.Vec2
	Vel core.Vec2
}

// steer applies movement intents to the ship.
func steer(ship *Ship, in core.InputFrame, cfg config.PlayerConfig) {
	turn := cfg.TurnStep * math.Pi / 180
	if in.Has(core.ActionTurnLeft) {
		ship.Angle -= turn
	}
	if in.Has(core.ActionTurnRight) {
		ship.Angle += turn
	}
	ship.Angle = math.Mod(ship.Angle+2*math.Pi, 2*math.Pi)

	if in.Has(core.ActionThrust) {
		ship.Vel = ship.Vel.Add(core.FromAngle(ship.Angle, cfg.Thrust)).Limit(cfg.MaxSpeed)
	}
	if in.Has(core.ActionBrake) {
		speed := ship.Vel.Len() - cfg.Thrust
		if speed <= 0 {
			ship.Vel = core.Vec2{}
		} else {
			ship.Vel = ship.Vel.Limit(speed)
		}
	}
}

// moveShip integrates the ship over dt seconds with damping, a speed cap,
// and world-bound collision.
func moveShip(ship *Ship, dt float64, cfg config.PlayerConfig, world float64) {
	ship.Vel = ship.Vel.Scale(math.Pow(cfg.Drag, dt)).Limit(cfg.MaxSpeed)
	ship.Pos = ship.Pos.Add(ship.Vel.Scale(dt))

	lo, hi := cfg.Radius, world-cfg.Radius
	if ship.Pos.X < lo || ship.Pos.X > hi {
		ship.Pos.X = core.ClampF(ship.Pos.X, lo, hi)
		ship.Vel.X = 0
	}
	if ship.Pos.Y < lo || ship.Pos.Y > hi {
		ship.Pos.Y = core.ClampF(ship.Pos.Y, lo, hi)
		ship.Vel.Y = 0
	}
}

// moveAlien integrates an alien and bounces it off the world bounds.
func moveAlien(a *Alien, dt, world float64) {
	a.Pos = a.Pos.Add(a.Vel.Scale(dt))

	if a.Pos.X < 0 {
		a.Pos.X = -a.Pos.X
		a.Vel.X = math.Abs(a.Vel.X)
	} else if a.Pos.X > world {
		a.Pos.X = 2*world - a.Pos.X
		a.Vel.X = -math.Abs(a.Vel.X)
	}
	if a.Pos.Y < 0 {
		a.Pos.Y = -a.Pos.Y
		a.Vel.Y = math.Abs(a.Vel.Y)
	} else if a.Pos.Y > world {
		a.Pos.Y = 2*world - a.Pos.Y
		a.Vel.Y = -math.Abs(a.Vel.Y)
	}
}

// moveBullet integrates a bullet. It returns false once the bullet has left the world.
func moveBullet(b *Bullet, dt, world float64) bool {
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	return inWorld(b.Pos, world)
}

func inWorld(p core.Vec2, world float64) bool {
	return p.X >= 0 && p.X <= world && p.Y >= 0 && p.Y <= world
}

// overlaps is a circle-circle test.
func overlaps(a, b core.Vec2, ra, rb float64) bool {
	return a.Dist(b) < ra+rb
}
