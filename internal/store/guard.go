package store

import "sync"

// Guard serializes multi-step read-modify-write sequences that span the
// flight and booking tables. Individual store operations are safe on
// their own; the seat-count invariant relates two tables and needs the
// whole book/cancel/update sequence to run without interleaving. One
// Guard instance is shared by every service that mutates flight state.
type Guard struct {
	mu sync.Mutex
}

// Do runs fn as a critical section and returns its error.
func (g *Guard) Do(fn func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn()
}
