package survival

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/space-survival/internal/core"
)

func TestGameIdentity(t *testing.T) {
	g := New(testConfig())
	if g.ID() != "survival" {
		t.Errorf("ID() = %q", g.ID())
	}
	if g.Title() == "" {
		t.Error("Title() should not be empty")
	}
}

func TestResetStartsFreshSession(t *testing.T) {
	cfg := testConfig()
	g := New(cfg)
	g.Reset(testRuntime(3))

	snap := g.Snapshot()
	if !snap.Session.Alive || snap.Session.Ammo != cfg.Player.StartingAmmo {
		t.Errorf("session after reset = %+v", snap.Session)
	}
	center := cfg.World.Size / 2
	if snap.Ship.Pos != core.V(center, center) {
		t.Errorf("ship at %v, expected world centre", snap.Ship.Pos)
	}
	if snap.Aliens != 0 || snap.Bullets != 0 || snap.Clips != 0 {
		t.Errorf("pools should be empty: %+v", snap)
	}
}

func TestFirstAlienSpawnsImmediately(t *testing.T) {
	cfg := testConfig()
	g := New(cfg)
	g.Reset(testRuntime(5))

	g.Tick(16, core.NewInputFrame())

	snap := g.Snapshot()
	if snap.Aliens != 1 {
		t.Fatalf("aliens = %d, expected 1", snap.Aliens)
	}
	if snap.Session.NextAlienSpawnAt != 16+cfg.Alien.StartingRate {
		t.Errorf("next spawn at %d", snap.Session.NextAlienSpawnAt)
	}
	if snap.Session.AlienSpawnInterval != cfg.Alien.StartingRate-cfg.Alien.RateStep {
		t.Errorf("interval = %d", snap.Session.AlienSpawnInterval)
	}
}

func TestFireSpendsAmmo(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)

	g.Tick(100, input(core.ActionFire))
	if g.Snapshot().Bullets != 0 {
		t.Error("weapon should not fire during activation")
	}

	res := g.Tick(600, input(core.ActionFire))
	snap := g.Snapshot()
	if snap.Bullets != 1 || snap.Session.Ammo != cfg.Player.StartingAmmo-1 || snap.Session.ShotsFired != 1 {
		t.Errorf("after firing: %+v", snap)
	}
	if !hasEffect(res.Effects, EffectShoot) {
		t.Errorf("effects = %v, expected shoot", res.Effects)
	}
}

func TestEmptyMagazine(t *testing.T) {
	g := newQuietGame(t, testConfig())
	g.session.Ammo = 0

	res := g.Tick(1000, input(core.ActionFire))
	if g.Snapshot().Bullets != 0 || g.Session().ShotsFired != 0 {
		t.Error("no bullet may be fired without ammo")
	}
	if hasEffect(res.Effects, EffectShoot) {
		t.Error("empty fire should not emit a shoot effect")
	}
}

func TestBulletKillsAlien(t *testing.T) {
	cfg := testConfig()
	cfg.Ammo.DropChance = 1
	g := newQuietGame(t, cfg)

	g.aliens.Acquire(Alien{Pos: core.V(100, 100)})
	g.bullets.Acquire(Bullet{Pos: core.V(100, 100)})

	res := g.Tick(16, core.NewInputFrame())
	snap := g.Snapshot()

	if snap.Session.Kills != 1 || snap.Session.Score != 1 {
		t.Errorf("kills/score = %d/%d, expected 1/1", snap.Session.Kills, snap.Session.Score)
	}
	if snap.Aliens != 0 || snap.Bullets != 0 {
		t.Errorf("alien and bullet should be removed: %+v", snap)
	}
	if snap.Clips != 1 || snap.PendingExpiry != 1 {
		t.Errorf("clip should drop with chance 1: %+v", snap)
	}
	if !hasEffect(res.Effects, EffectExplosion) {
		t.Errorf("effects = %v, expected explosion", res.Effects)
	}
}

func TestBulletKillsOneAlien(t *testing.T) {
	cfg := testConfig()
	cfg.Ammo.DropChance = 0
	g := newQuietGame(t, cfg)

	g.aliens.Acquire(Alien{Pos: core.V(100, 100)})
	g.aliens.Acquire(Alien{Pos: core.V(102, 100)})
	g.bullets.Acquire(Bullet{Pos: core.V(101, 100)})

	g.Tick(16, core.NewInputFrame())

	if g.Session().Kills != 1 || g.Snapshot().Aliens != 1 {
		t.Errorf("one bullet should destroy one alien, kills=%d aliens=%d",
			g.Session().Kills, g.Snapshot().Aliens)
	}
}

func TestBulletLeavesWorld(t *testing.T) {
	g := newQuietGame(t, testConfig())
	g.bullets.Acquire(Bullet{Pos: core.V(995, 100), Vel: core.V(500, 0)})

	g.Tick(100, core.NewInputFrame())

	if g.Snapshot().Bullets != 0 {
		t.Error("bullet leaving the world should be released")
	}
}

func TestDeathRecordsHighscoreOnce(t *testing.T) {
	hs := &fakeHighscores{}
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	g := newQuietGame(t, testConfig(), WithHighscores(hs), WithWallClock(func() time.Time { return at }))

	g.session.Kills = 3
	g.session.Score = 3
	g.session.ShotsFired = 4
	g.aliens.Acquire(Alien{Pos: g.ship.Pos})
	g.aliens.Acquire(Alien{Pos: g.ship.Pos.Add(core.V(5, 0))})

	res := g.Tick(16, core.NewInputFrame())

	if !res.State.GameOver || g.Session().Alive {
		t.Fatal("touching an alien should kill the player")
	}
	if !hasEffect(res.Effects, EffectDeath) {
		t.Errorf("effects = %v, expected death", res.Effects)
	}
	if len(hs.saves) != 1 {
		t.Fatalf("Save called %d times, expected once", len(hs.saves))
	}
	if got := hs.saves[0]; got != (savedSession{3, 3, 4}) {
		t.Errorf("saved %+v, expected the pre-reset session", got)
	}

	g.aliens.Acquire(Alien{Pos: g.ship.Pos})
	g.Tick(32, core.NewInputFrame())
	if len(hs.saves) != 1 {
		t.Error("a dead player must not be recorded again")
	}

	board := g.Leaderboard()
	if len(board) != 1 || board[0].Score != "3" || board[0].Accuracy.String() != "75%" {
		t.Errorf("leaderboard = %+v", board)
	}
}

func TestZeroScoreNotSaved(t *testing.T) {
	hs := &fakeHighscores{}
	g := newQuietGame(t, testConfig(), WithHighscores(hs))
	g.aliens.Acquire(Alien{Pos: g.ship.Pos})

	g.Tick(16, core.NewInputFrame())

	if len(hs.entries) != 0 || len(g.Leaderboard()) != 0 {
		t.Error("zero-score session should not reach the leaderboard")
	}
	if g.lastSaved {
		t.Error("zero-score session should not be marked saved")
	}
}

func TestLeaderboardErrorIsNotFatal(t *testing.T) {
	hs := &fakeHighscores{topErr: errBoom}
	g := newQuietGame(t, testConfig(), WithHighscores(hs))

	if g.Leaderboard() != nil {
		t.Error("leaderboard should stay empty when the store fails")
	}
}

func TestDeadGameFreezes(t *testing.T) {
	g := newQuietGame(t, testConfig())
	g.aliens.Acquire(Alien{Pos: g.ship.Pos})
	g.Tick(16, core.NewInputFrame())

	before := g.Snapshot()
	g.Tick(1000, input(core.ActionThrust, core.ActionFire))
	after := g.Snapshot()

	if after.Ship != before.Ship || after.Session != before.Session {
		t.Error("nothing but restart should act on a dead player")
	}
}

func TestRestartResetsEverything(t *testing.T) {
	cfg := testConfig()
	g := newQuietGame(t, cfg)

	g.session.Kills = 7
	g.session.Score = 7
	g.session.Ammo = 2
	g.bullets.Acquire(Bullet{Pos: core.V(10, 10)})
	g.dropClip(core.V(50, 50), 0)
	g.aliens.Acquire(Alien{Pos: g.ship.Pos})
	g.Tick(16, core.NewInputFrame())

	res := g.Tick(2000, input(core.ActionRestart))
	snap := g.Snapshot()

	if !hasEffect(res.Effects, EffectRestart) {
		t.Errorf("effects = %v, expected restart", res.Effects)
	}
	want := NewSession(2000, cfg)
	if snap.Session != want {
		t.Errorf("session = %+v, expected %+v", snap.Session, want)
	}
	if snap.Aliens != 0 || snap.Bullets != 0 || snap.Clips != 0 || snap.PendingExpiry != 0 {
		t.Errorf("world should be empty after restart: %+v", snap)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newQuietGame(t, testConfig())

	res := g.Tick(16, input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause should take effect")
	}
	before := g.Snapshot().Ship
	g.Tick(32, input(core.ActionThrust))
	if g.Snapshot().Ship != before {
		t.Error("ship should not move while paused")
	}

	res = g.Tick(48, input(core.ActionPause))
	if res.State.Paused {
		t.Error("second pause should resume")
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(testConfig())
		g.Reset(testRuntime(99))
		for i := 1; i <= 3000; i++ {
			var in core.InputFrame
			switch {
			case i%7 == 0:
				in = input(core.ActionFire)
			case i%11 == 0:
				in = input(core.ActionTurnLeft, core.ActionThrust)
			case i%13 == 0:
				in = input(core.ActionBrake)
			case i%500 == 0:
				in = input(core.ActionRestart)
			default:
				in = core.NewInputFrame()
			}
			g.Tick(core.Millis(i*16), in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newQuietGame(t, testConfig())
	g.aliens.Acquire(Alien{Pos: g.ship.Pos.Add(core.V(60, 0))})

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"AMMO", "SCORE", "ARMING", string(AlienChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderDeathPanel(t *testing.T) {
	hs := &fakeHighscores{}
	g := newQuietGame(t, testConfig(), WithHighscores(hs))
	g.session.Score = 5
	g.session.Kills = 5
	g.session.ShotsFired = 10
	g.aliens.Acquire(Alien{Pos: g.ship.Pos})
	g.Tick(16, core.NewInputFrame())

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	for _, want := range []string{"YOU DIED", "HIGHSCORES", "50%", "score saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("death panel missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newQuietGame(t, testConfig())
	scr := core.NewScreen(20, 5)
	g.Render(scr)
	if strings.Contains(scr.String(), "AMMO") {
		t.Error("HUD should not render on a tiny screen")
	}
}
