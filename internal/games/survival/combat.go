package survival

import "github.com/vovakirdan/space-survival/internal/core"

// ResolveBulletHit scores a bullet destroying an alien.
// roll is a uniform draw in [0, 1); an ammo clip drops when roll < dropChance.
func ResolveBulletHit(s SessionState, roll, dropChance float64) (SessionState, bool) {
	s.Kills++
	s.Score++
	return s, roll < dropChance
}

// ResolvePlayerHit kills the player. It reports true only for the
// alive-to-dead transition; hits on a dead player change nothing.
func ResolvePlayerHit(s SessionState) (SessionState, bool) {
	if !s.Alive {
		return s, false
	}
	s.Alive = false
	return s, true
}

// resolveBulletHits removes every bullet/alien pair that touches and scores it.
// Each bullet destroys at most one alien.
func (g *Game) resolveBulletHits(now core.Millis) {
	bulletR := g.cfg.Player.BulletRadius
	alienR := g.cfg.Alien.Radius

	g.bullets.Each(func(bh Handle, b *Bullet) {
		g.aliens.Each(func(ah Handle, a *Alien) {
			if _, live := g.bullets.Get(bh); !live {
				return
			}
			if !overlaps(b.Pos, a.Pos, bulletR, alienR) {
				return
			}

			pos := a.Pos
			g.aliens.Release(ah)
			g.bullets.Release(bh)

			var drop bool
			g.session, drop = ResolveBulletHit(g.session, g.rng.Float64(), g.cfg.Ammo.DropChance)
			g.emit(EffectExplosion)
			if drop {
				g.dropClip(pos, now)
			}
			g.logger.Debug("alien destroyed", "kills", g.session.Kills, "drop", drop)
		})
	})
}

// resolvePlayerHits ends the session on the first alien touching the ship.
func (g *Game) resolvePlayerHits(now core.Millis) {
	playerR := g.cfg.Player.Radius
	alienR := g.cfg.Alien.Radius

	g.aliens.Each(func(ah Handle, a *Alien) {
		if !g.session.Alive || !overlaps(g.ship.Pos, a.Pos, playerR, alienR) {
			return
		}
		g.aliens.Release(ah)

		var died bool
		g.session, died = ResolvePlayerHit(g.session)
		if died {
			g.die(now)
		}
	})
}

// die records the finished session. It runs before anything is reset, so
// the ledger sees this session's kills and shots.
func (g *Game) die(now core.Millis) {
	g.emit(EffectExplosion)
	g.emit(EffectDeath)

	s := g.session
	g.logger.Info("player died",
		"score", s.Score, "kills", s.Kills, "shots", s.ShotsFired,
		"accuracy", s.Accuracy().String(), "survived", s.Elapsed(now).Seconds())

	if g.highscores == nil {
		return
	}
	saved, err := g.highscores.Save(s.Score, s.Kills, s.ShotsFired, g.wallClock())
	if err != nil {
		g.logger.Warn("could not save highscore", "error", err)
		return
	}
	g.lastSaved = saved
	g.loadLeaderboard()
}
