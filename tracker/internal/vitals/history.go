package vitals

import (
	"sync"

	"github.com/bloomnest/bloom/pkg/types"
)

// History is the append-only, chronologically ordered list of readings for
// one session. Entries are never reordered, replaced or removed.
//
// History has one writer (the owning session); readers take a Snapshot.
// All methods are safe for concurrent use.
type History struct {
	mu       sync.RWMutex
	readings []types.VitalsReading
}

// NewHistory returns an empty History.
func NewHistory() *History {
	return &History{}
}

// Append adds r as the newest entry.
func (h *History) Append(r types.VitalsReading) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.readings = append(h.readings, r)
}

// Latest returns the newest entry and whether one exists.
func (h *History) Latest() (types.VitalsReading, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if len(h.readings) == 0 {
		return types.VitalsReading{}, false
	}
	return h.readings[len(h.readings)-1], true
}

// Len returns the number of entries.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.readings)
}

// Snapshot returns a copy of all entries, oldest first. Changes to the
// returned slice do not affect h.
func (h *History) Snapshot() []types.VitalsReading {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]types.VitalsReading, len(h.readings))
	copy(out, h.readings)
	return out
}
