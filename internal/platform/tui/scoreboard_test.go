package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-survival/internal/ledger"
)

type fakeBoard struct {
	entries []ledger.Entry
	err     error
	calls   int
}

func (b *fakeBoard) Top(n int) ([]ledger.Entry, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	return ledger.TopN(b.entries, n), nil
}

func TestScoreboardShowsTopEntries(t *testing.T) {
	at := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	board := &fakeBoard{}
	for _, score := range []int{3, 12, 7, 1, 9, 4} {
		board.entries = append(board.entries, ledger.NewEntry(score, score, score*2, at))
	}

	m := NewScoreboardModel(board, 80, 24)
	if len(m.entries) != ledger.DisplayLimit {
		t.Fatalf("entries = %d, expected %d", len(m.entries), ledger.DisplayLimit)
	}
	if m.entries[0].Score != "12" {
		t.Errorf("best entry = %q, expected 12", m.entries[0].Score)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES", "12", "50%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel(&fakeBoard{}, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty ledger should show the empty message")
	}

	m = NewScoreboardModel(&fakeBoard{err: errors.New("disk gone")}, 80, 24)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("store errors should be shown")
	}
}

func TestScoreboardRefreshAndQuit(t *testing.T) {
	board := &fakeBoard{}
	m := NewScoreboardModel(board, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if board.calls != 2 {
		t.Errorf("refresh should reload, Top called %d times", board.calls)
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Error("esc should quit")
	}
}
