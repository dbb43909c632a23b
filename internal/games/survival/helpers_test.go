package survival

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/space-survival/internal/config"
	"github.com/vovakirdan/space-survival/internal/core"
	"github.com/vovakirdan/space-survival/internal/ledger"
)

func millis(v int64) core.Millis {
	return core.Millis(v)
}

func testConfig() config.SurvivalConfig {
	return config.DefaultSurvivalConfig()
}

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// savedSession is one call to fakeHighscores.Save.
type savedSession struct {
	score, kills, shots int
}

// fakeHighscores records Save calls and serves them back through Top.
type fakeHighscores struct {
	saves   []savedSession
	topErr  error
	entries []ledger.Entry
}

func (f *fakeHighscores) Save(score, kills, shots int, at time.Time) (bool, error) {
	f.saves = append(f.saves, savedSession{score, kills, shots})
	if score <= 0 {
		return false, nil
	}
	f.entries = append(f.entries, ledger.NewEntry(score, kills, shots, at))
	return true, nil
}

func (f *fakeHighscores) Top(n int) ([]ledger.Entry, error) {
	if f.topErr != nil {
		return nil, f.topErr
	}
	return ledger.TopN(f.entries, n), nil
}

var errBoom = errors.New("boom")

// newQuietGame returns a reset game whose spawner never fires,
// so tests control every alien in the world.
func newQuietGame(t *testing.T, cfg config.SurvivalConfig, opts ...Option) *Game {
	t.Helper()
	g := New(cfg, opts...)
	g.Reset(testRuntime(1))
	g.session.NextAlienSpawnAt = 1 << 40
	return g
}

func hasEffect(effects []core.Effect, want core.Effect) bool {
	for _, e := range effects {
		if e == want {
			return true
		}
	}
	return false
}
