// Package ledger keeps the persisted highscore ledger.
//
// The ledger is one JSON array stored under a single key. Every save reads the
// whole array, appends one entry, and writes the whole array back; the stored
// array is never truncated or reordered. Display order (score descending, top
// N) is computed on a copy.
package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// Key is the storage key the ledger lives under.
	Key = "highscores"

	// DisplayLimit is how many entries the leaderboard shows.
	DisplayLimit = 5

	// DateLayout formats entry dates like a US-locale toLocaleString().
	DateLayout = "1/2/2006, 3:04:05 PM"
)

// KV is the key-value persistence the ledger is stored in.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Accuracy is kills per shot fired. NaN means no shots were fired.
type Accuracy float64

// ComputeAccuracy returns kills/shots, or NaN when shots is zero.
func ComputeAccuracy(kills, shots int) Accuracy {
	if shots <= 0 {
		return Accuracy(math.NaN())
	}
	return Accuracy(float64(kills) / float64(shots))
}

// Valid reports whether the accuracy is a real number.
func (a Accuracy) Valid() bool {
	f := float64(a)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// String renders the accuracy as a percentage, or "-" when undefined.
func (a Accuracy) String() string {
	if !a.Valid() {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", float64(a)*100)
}

// MarshalJSON encodes undefined accuracy as null.
func (a Accuracy) MarshalJSON() ([]byte, error) {
	if !a.Valid() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(a))
}

// UnmarshalJSON decodes null back to NaN.
func (a *Accuracy) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*a = Accuracy(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("ledger: bad accuracy %s: %w", data, err)
	}
	*a = Accuracy(f)
	return nil
}

// Entry is one completed session. Score is kept string-encoded to match
// the stored layout.
type Entry struct {
	Score    string   `json:"score"`
	Date     string   `json:"date"`
	Accuracy Accuracy `json:"accuracy"`
}

// NewEntry builds the entry for a finished session.
func NewEntry(score, kills, shots int, at time.Time) Entry {
	return Entry{
		Score:    strconv.Itoa(score),
		Date:     at.Format(DateLayout),
		Accuracy: ComputeAccuracy(kills, shots),
	}
}

// UnmarshalJSON accepts the score as either a string or a bare number.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Score    json.RawMessage `json:"score"`
		Date     string          `json:"date"`
		Accuracy Accuracy        `json:"accuracy"`
	}
	raw.Accuracy = Accuracy(math.NaN())
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var s string
	if err := json.Unmarshal(raw.Score, &s); err != nil {
		var n json.Number
		if numErr := json.Unmarshal(raw.Score, &n); numErr != nil {
			return fmt.Errorf("ledger: bad score %s", raw.Score)
		}
		s = n.String()
	}

	e.Score = s
	e.Date = raw.Date
	e.Accuracy = raw.Accuracy
	return nil
}

// Points returns the numeric score; unparsable scores count as zero.
func (e Entry) Points() int {
	n, err := strconv.Atoi(e.Score)
	if err != nil {
		return 0
	}
	return n
}

// Ledger reads and appends highscore entries in a KV store.
type Ledger struct {
	kv     KV
	key    string
	logger *log.Logger
}

// New creates a ledger over kv. A nil logger discards output.
func New(kv KV, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ledger{kv: kv, key: Key, logger: logger}
}

// Read returns all entries in stored (append) order.
// A ledger that was never written reads as empty.
func (l *Ledger) Read() ([]Entry, error) {
	data, ok, err := l.kv.Get(l.key)
	if err != nil {
		return nil, fmt.Errorf("ledger: read: %w", err)
	}
	if !ok || len(bytes.TrimSpace(data)) == 0 {
		return []Entry{}, nil
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ledger: decode: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

// Save appends a session result. Sessions scoring zero or less are not
// recorded; the returned bool reports whether an entry was written.
// kills and shots must be the finished session's counts.
func (l *Ledger) Save(score, kills, shots int, at time.Time) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	entries, err := l.Read()
	if err != nil {
		return false, err
	}

	entry := NewEntry(score, kills, shots, at)
	entries = append(entries, entry)

	data, err := json.Marshal(entries)
	if err != nil {
		return false, fmt.Errorf("ledger: encode: %w", err)
	}
	if err := l.kv.Put(l.key, data); err != nil {
		return false, fmt.Errorf("ledger: write: %w", err)
	}

	l.logger.Info("highscore recorded", "score", entry.Score, "accuracy", entry.Accuracy.String(), "entries", len(entries))
	return true, nil
}

// Top returns the best n entries, highest score first.
func (l *Ledger) Top(n int) ([]Entry, error) {
	entries, err := l.Read()
	if err != nil {
		return nil, err
	}
	return TopN(entries, n), nil
}

// TopN sorts a copy of entries by numeric score descending and keeps the first n.
// Equal scores keep their stored order. The input slice is not modified.
func TopN(entries []Entry, n int) []Entry {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Points() > sorted[j].Points()
	})

	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
