// Package kv defines the ordered key-value byte store the entity stores
// are built on, with an in-memory implementation for tests and local
// runs and a Postgres implementation for durable deployments.
package kv

import (
	"context"
	"errors"
)

// ErrStop can be returned from an Ascend callback to stop the iteration
// early without reporting a failure.
var ErrStop = errors.New("stop iteration")

// ByteStore is an ordered mapping from uint64 keys to opaque byte values.
// Implementations must never hand out slices that alias their internal
// state: values are copied on the way in and on the way out.
type ByteStore interface {
	// Put stores value under id, replacing any existing record. The
	// previous value is returned when one existed.
	Put(ctx context.Context, id uint64, value []byte) (prev []byte, existed bool, err error)
	// Get returns the value stored under id, or ok=false.
	Get(ctx context.Context, id uint64) (value []byte, ok bool, err error)
	// Delete removes the record under id and returns it, or ok=false.
	Delete(ctx context.Context, id uint64) (prev []byte, existed bool, err error)
	// Ascend calls fn for every record in ascending key order. Returning
	// ErrStop from fn ends the walk without error.
	Ascend(ctx context.Context, fn func(id uint64, value []byte) error) error
}

// Cell persists a single uint64, used for the shared id counter.
type Cell interface {
	Get(ctx context.Context) (uint64, error)
	Set(ctx context.Context, v uint64) error
}
