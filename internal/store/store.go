// Package store builds typed, ordered entity stores on top of a kv.ByteStore
// and owns the two pieces of state shared across entity kinds: the id
// sequence and the transaction guard.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/kv"
)

// Store is an ordered mapping from uint64 ids to records of type V.
// Records are JSON-encoded into the underlying byte store, so every read
// decodes a fresh copy and no caller ever aliases stored state. Mutations
// replace whole records.
type Store[V any] struct {
	bytes kv.ByteStore
}

func New[V any](bytes kv.ByteStore) *Store[V] {
	return &Store[V]{bytes: bytes}
}

// Insert stores v under id, replacing any existing record. The previous
// record is returned when one existed.
func (s *Store[V]) Insert(ctx context.Context, id uint64, v V) (*V, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode record %d: %w", id, err)
	}
	prev, existed, err := s.bytes.Put(ctx, id, data)
	if err != nil {
		return nil, err
	}
	if !existed {
		return nil, nil
	}
	return decode[V](id, prev)
}

// Get returns a copy of the record under id, or ok=false.
func (s *Store[V]) Get(ctx context.Context, id uint64) (*V, bool, error) {
	data, ok, err := s.bytes.Get(ctx, id)
	if err != nil || !ok {
		return nil, false, err
	}
	v, err := decode[V](id, data)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Remove deletes the record under id and returns it, or ok=false.
func (s *Store[V]) Remove(ctx context.Context, id uint64) (*V, bool, error) {
	data, existed, err := s.bytes.Delete(ctx, id)
	if err != nil || !existed {
		return nil, false, err
	}
	v, err := decode[V](id, data)
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

// Scan calls fn for every record in ascending id order. Returning
// kv.ErrStop from fn ends the scan without error. The walk is restartable:
// each call starts over from the smallest id.
func (s *Store[V]) Scan(ctx context.Context, fn func(id uint64, v V) error) error {
	return s.bytes.Ascend(ctx, func(id uint64, data []byte) error {
		v, err := decode[V](id, data)
		if err != nil {
			return err
		}
		return fn(id, *v)
	})
}

func decode[V any](id uint64, data []byte) (*V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode record %d: %w", id, err)
	}
	return &v, nil
}
