package store

import (
	"context"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/kv"
	"github.com/stretchr/testify/assert"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_InsertReturnsPrevious(t *testing.T) {
	ctx := context.Background()
	s := New[record](kv.NewMemory())

	prev, err := s.Insert(ctx, 1, record{Name: "first"})
	assert.NoError(t, err)
	assert.Nil(t, prev)

	prev, err = s.Insert(ctx, 1, record{Name: "second"})
	assert.NoError(t, err)
	assert.NotNil(t, prev)
	assert.Equal(t, "first", prev.Name)
}

func TestStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New[record](kv.NewMemory())

	_, err := s.Insert(ctx, 1, record{Name: "stable", Count: 1})
	assert.NoError(t, err)

	got, ok, err := s.Get(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
	got.Name = "mutated"

	again, ok, err := s.Get(ctx, 1)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "stable", again.Name)
}

func TestStore_GetMissing(t *testing.T) {
	ctx := context.Background()
	s := New[record](kv.NewMemory())

	got, ok, err := s.Get(ctx, 99)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_RemoveReturnsRecord(t *testing.T) {
	ctx := context.Background()
	s := New[record](kv.NewMemory())

	_, err := s.Insert(ctx, 5, record{Name: "gone"})
	assert.NoError(t, err)

	removed, existed, err := s.Remove(ctx, 5)
	assert.NoError(t, err)
	assert.True(t, existed)
	assert.Equal(t, "gone", removed.Name)

	_, existed, err = s.Remove(ctx, 5)
	assert.NoError(t, err)
	assert.False(t, existed)
}

func TestStore_ScanAscending(t *testing.T) {
	ctx := context.Background()
	s := New[record](kv.NewMemory())

	for _, id := range []uint64{30, 10, 20} {
		_, err := s.Insert(ctx, id, record{Count: int(id)})
		assert.NoError(t, err)
	}

	var ids []uint64
	err := s.Scan(ctx, func(id uint64, r record) error {
		ids = append(ids, id)
		assert.Equal(t, int(id), r.Count)
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []uint64{10, 20, 30}, ids)
}
