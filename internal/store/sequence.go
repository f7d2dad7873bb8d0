package store

import (
	"context"
	"sync"

	"github.com/Domenick1991/flightdesk/internal/kv"
)

// Sequence issues unique, monotonically increasing ids for all entity
// kinds from one shared counter. The counter starts at 0 and is
// pre-incremented, so the first id handed out is 1. Ids are never reused,
// even after the record they named is deleted.
type Sequence struct {
	mu   sync.Mutex
	cell kv.Cell
}

func NewSequence(cell kv.Cell) *Sequence {
	return &Sequence{cell: cell}
}

// Next increments the counter and returns the new value.
func (s *Sequence) Next(ctx context.Context) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.cell.Get(ctx)
	if err != nil {
		return 0, err
	}
	next := current + 1
	if err := s.cell.Set(ctx, next); err != nil {
		return 0, err
	}
	return next, nil
}
