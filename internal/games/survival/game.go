// Package survival implements a "survive waves of aliens" arcade shooter.
// The player steers a ship around a square world, shoots aliens that spawn
// ever faster, and picks up ammo clips the aliens sometimes drop.
//
// The simulation is engine-free: the platform calls Tick with the current
// simulated time and the input sampled for that frame.
package survival

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/ledger"
)

// Presentation effects fired by the simulation.
const (
	EffectShoot     core.Effect = "shoot"
	EffectExplosion core.Effect = "explosion"
	EffectPickup    core.Effect = "pickup"
	EffectDeath     core.Effect = "death"
	EffectRestart   core.Effect = "restart"
)

// Highscores is the ledger the game records finished sessions in.
type Highscores interface {
	Save(score, kills, shots int, at time.Time) (bool, error)
	Top(n int) ([]ledger.Entry, error)
}

// Option configures a Game.
type Option func(*Game)

// WithHighscores records sessions in h and shows its leaderboard.
func WithHighscores(h Highscores) Option {
	return func(g *Game) { g.highscores = h }
}

// WithLogger sets the game logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// WithWallClock overrides the clock used to date highscore entries.
func WithWallClock(now func() time.Time) Option {
	return func(g *Game) { g.wallClock = now }
}

// Game implements the survival game logic.
type Game struct {
	cfg     config.SurvivalConfig
	runtime core.RuntimeConfig

	rng      *rand.Rand
	director *SpawnDirector

	session SessionState
	ship    Ship
	aliens  *Pool[Alien]
	bullets *Pool[Bullet]
	clips   *Pool[AmmoClip]
	expiry  ReleaseQueue

	now      core.Millis
	lastTick core.Millis
	paused   bool
	effects  []core.Effect

	highscores  Highscores
	leaderboard []ledger.Entry
	lastSaved   bool

	logger    *log.Logger
	wallClock func() time.Time
}

// New creates a game with the given tuning.
func New(cfg config.SurvivalConfig, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		aliens:    NewPool[Alien](cfg.Alien.MaxSpawned),
		bullets:   NewPool[Bullet](cfg.Player.MaxBullets),
		clips:     NewPool[AmmoClip](cfg.Ammo.MaxClips),
		wallClock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "survival"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Survival"
}

// Reset starts a brand new scene at simulated time zero.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.director = NewSpawnDirector(g.rng, g.cfg)
	g.paused = false
	g.restart(0)
}

// restart begins a new session at now: state reset, pools emptied, leaderboard reloaded.
func (g *Game) restart(now core.Millis) {
	g.session = NewSession(now, g.cfg)
	g.now = now
	g.lastTick = now
	g.lastSaved = false

	center := g.cfg.World.Size / 2
	g.ship = Ship{Pos: core.V(center, center), Angle: -math.Pi / 2}

	g.aliens.Reset()
	g.bullets.Reset()
	g.clips.Reset()
	g.expiry.Reset()

	g.loadLeaderboard()
}

// Tick advances the simulation to now, applying the input sampled this frame.
// now must not go backwards.
func (g *Game) Tick(now core.Millis, in core.InputFrame) core.StepResult {
	g.effects = nil

	if in.Has(core.ActionPause) && g.session.Alive {
		g.paused = !g.paused
	}

	dt := (now - g.lastTick).Seconds()
	if dt < 0 {
		dt = 0
	}
	g.lastTick = now
	g.now = now

	if g.paused {
		return g.result()
	}

	if !g.session.Alive {
		if in.Has(core.ActionRestart) {
			g.restart(now)
			g.emit(EffectRestart)
		}
		return g.result()
	}

	// Timers and spawning
	if SpawnDue(g.session, now, g.aliens.Active(), g.aliens.Cap()) {
		g.spawnAlien(now)
	}

	// Player intents
	steer(&g.ship, in, g.cfg.Player)
	if in.Has(core.ActionFire) {
		g.shoot(now)
	}

	// Movement
	world := g.cfg.World.Size
	moveShip(&g.ship, dt, g.cfg.Player, world)
	g.aliens.Each(func(_ Handle, a *Alien) { moveAlien(a, dt, world) })
	g.bullets.Each(func(h Handle, b *Bullet) {
		if !moveBullet(b, dt, world) {
			g.bullets.Release(h)
		}
	})

	// Collisions
	g.resolveBulletHits(now)
	g.resolvePlayerHits(now)

	// Ammo pickups
	g.collectClips()
	g.expireClips(now)

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Effects: g.effects}
}

func (g *Game) emit(e core.Effect) {
	g.effects = append(g.effects, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score,
		GameOver: !g.session.Alive,
		Paused:   g.paused,
	}
}

// Session returns a copy of the current session state.
func (g *Game) Session() SessionState {
	return g.session
}

// Leaderboard returns the entries shown on the scoreboard, best first.
func (g *Game) Leaderboard() []ledger.Entry {
	return g.leaderboard
}

func (g *Game) loadLeaderboard() {
	if g.highscores == nil {
		return
	}
	top, err := g.highscores.Top(ledger.DisplayLimit)
	if err != nil {
		g.logger.Warn("could not load highscores", "error", err)
		return
	}
	g.leaderboard = top
}

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Now           core.Millis
	Session       SessionState
	Ship          Ship
	Aliens        int
	Bullets       int
	Clips         int
	PendingExpiry int
	Paused        bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Now:           g.now,
		Session:       g.session,
		Ship:          g.ship,
		Aliens:        g.aliens.Active(),
		Bullets:       g.bullets.Active(),
		Clips:         g.clips.Active(),
		PendingExpiry: g.expiry.Len(),
		Paused:        g.paused,
	}
}
