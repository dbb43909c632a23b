package survival

import "github.com/vovakirdan/space-survival/internal/core"

// gateOpen reports whether an action gated until `until` may run at now.
// The gate opens strictly after the deadline.
func gateOpen(now, until core.Millis) bool {
	return now > until
}

type deferredRelease struct {
	at     core.Millis
	handle Handle
}

// ReleaseQueue holds pool releases scheduled for a later time.
// Due releases run unconditionally; the pool ignores handles that went stale.
type ReleaseQueue struct {
	items []deferredRelease
}

// Schedule queues h for release at time at.
func (q *ReleaseQueue) Schedule(at core.Millis, h Handle) {
	q.items = append(q.items, deferredRelease{at: at, handle: h})
}

// Due removes and returns every handle scheduled at or before now.
func (q *ReleaseQueue) Due(now core.Millis) []Handle {
	var due []Handle
	kept := q.items[:0]
	for _, it := range q.items {
		if it.at <= now {
			due = append(due, it.handle)
			continue
		}
		kept = append(kept, it)
	}
	q.items = kept
	return due
}

// Len returns the number of pending releases.
func (q *ReleaseQueue) Len() int {
	return len(q.items)
}

// Reset drops all pending releases.
func (q *ReleaseQueue) Reset() {
	q.items = q.items[:0]
}
