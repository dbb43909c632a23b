package survival

import (
	"testing"

	"github.com/vovakirdan/space-survival/internal/core"
)

func TestCollectAmmo(t *testing.T) {
	s := SessionState{Ammo: 3}
	if got := CollectAmmo(s, 10).Ammo; got != 13 {
		t.Errorf("ammo = %d, expected 13", got)
	}
}

func TestClipExpires(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)

	g.dropClip(core.V(100, 100), 1000)
	if g.clips.Active() != 1 || g.expiry.Len() != 1 {
		t.Fatalf("clip not dropped: active=%d pending=%d", g.clips.Active(), g.expiry.Len())
	}

	g.Tick(1000+cfg.Ammo.Timeout-1, core.NewInputFrame())
	if g.clips.Active() != 1 {
		t.Error("clip should still be there before its timeout")
	}

	g.Tick(1000+cfg.Ammo.Timeout, core.NewInputFrame())
	if g.clips.Active() != 0 || g.expiry.Len() != 0 {
		t.Errorf("clip should expire: active=%d pending=%d", g.clips.Active(), g.expiry.Len())
	}
}

func TestClipPickup(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)
	ammo := g.Session().Ammo

	g.dropClip(g.ship.Pos, 0)
	res := g.Tick(16, core.NewInputFrame())

	if got := g.Session().Ammo; got != ammo+cfg.Ammo.PerClip {
		t.Errorf("ammo = %d, expected %d", got, ammo+cfg.Ammo.PerClip)
	}
	if g.clips.Active() != 0 {
		t.Error("collected clip should be removed")
	}
	if !hasEffect(res.Effects, EffectPickup) {
		t.Errorf("effects = %v, expected pickup", res.Effects)
	}
}

func TestExpiryAfterPickupIsNoop(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)

	// First clip is collected, then a second one reuses its slot.
	g.dropClip(g.ship.Pos, 0)
	g.Tick(16, core.NewInputFrame())
	g.dropClip(core.V(100, 100), 5000)

	g.Tick(cfg.Ammo.Timeout, core.NewInputFrame())
	if g.clips.Active() != 1 {
		t.Fatal("stale expiry removed a clip that reused the slot")
	}

	g.Tick(5000+cfg.Ammo.Timeout, core.NewInputFrame())
	if g.clips.Active() != 0 {
		t.Error("second clip should expire on its own schedule")
	}
}

func TestShootNeedsFreeBulletSlot(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)
	for !g.bullets.Full() {
		g.bullets.Acquire(Bullet{Pos: core.V(10, 10)})
	}
	before := g.Session()

	g.shoot(1000)

	if g.Session() != before {
		t.Error("shot with no free bullet slot must not spend ammo")
	}
}
