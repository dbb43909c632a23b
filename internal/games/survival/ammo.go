package survival

import "github.com/vovakirdan/space-survival/internal/core"

// AmmoClip is a pickup dropped by a destroyed alien.
type AmmoClip struct {
	Pos       core.Vec2
	ExpiresAt core.Millis
}

// CollectAmmo refills ammo by one clip.
func CollectAmmo(s SessionState, perClip int) SessionState {
	s.Ammo += perClip
	return s
}

// shoot fires one bullet along the ship's heading if the weapon allows it.
// With every bullet slot in flight the shot is dropped and no ammo is spent.
func (g *Game) shoot(now core.Millis) {
	if g.bullets.Full() {
		return
	}
	next, ok := TryFire(g.session, now, g.cfg.Player)
	if !ok {
		return
	}

	muzzle := g.ship.Pos.Add(core.FromAngle(g.ship.Angle, g.cfg.Player.Radius))
	bullet := Bullet{Pos: muzzle, Vel: core.FromAngle(g.ship.Angle, g.cfg.Player.BulletSpeed)}
	if _, acquired := g.bullets.Acquire(bullet); !acquired {
		return
	}
	g.session = next
	g.emit(EffectShoot)
}

// dropClip places a clip at pos and schedules its removal after the clip lifetime.
func (g *Game) dropClip(pos core.Vec2, now core.Millis) {
	expires := now + g.cfg.Ammo.Timeout
	h, ok := g.clips.Acquire(AmmoClip{Pos: pos, ExpiresAt: expires})
	if !ok {
		g.logger.Debug("ammo clip dropped on the floor, pool full")
		return
	}
	g.expiry.Schedule(expires, h)
}

// collectClips hands every clip the ship touches to the player.
func (g *Game) collectClips() {
	playerR := g.cfg.Player.Radius
	clipR := g.cfg.Ammo.Radius

	g.clips.Each(func(h Handle, c *AmmoClip) {
		if !overlaps(g.ship.Pos, c.Pos, playerR, clipR) {
			return
		}
		g.clips.Release(h)
		g.session = CollectAmmo(g.session, g.cfg.Ammo.PerClip)
		g.emit(EffectPickup)
		g.logger.Debug("ammo collected", "ammo", g.session.Ammo)
	})
}

// expireClips runs due removals. Clips already collected are skipped by the pool.
func (g *Game) expireClips(now core.Millis) {
	for _, h := range g.expiry.Due(now) {
		g.clips.Release(h)
	}
}
