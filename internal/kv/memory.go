package kv

import (
	"context"
	"sort"
	"sync"
)

// Memory is a ByteStore backed by a sorted key index over a map. It is
// safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[uint64][]byte
	keys    []uint64 // sorted ascending
}

func NewMemory() *Memory {
	return &Memory{records: make(map[uint64][]byte)}
}

func (m *Memory) Put(_ context.Context, id uint64, value []byte) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, existed := m.records[id]
	m.records[id] = cloneBytes(value)
	if !existed {
		i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= id })
		m.keys = append(m.keys, 0)
		copy(m.keys[i+1:], m.keys[i:])
		m.keys[i] = id
	}
	return prev, existed, nil
}

func (m *Memory) Get(_ context.Context, id uint64) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[id]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (m *Memory) Delete(_ context.Context, id uint64) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev, existed := m.records[id]
	if !existed {
		return nil, false, nil
	}
	delete(m.records, id)
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] >= id })
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	return prev, true, nil
}

// Ascend walks a snapshot of the key index so the callback may mutate the
// store without invalidating the iteration.
func (m *Memory) Ascend(_ context.Context, fn func(id uint64, value []byte) error) error {
	m.mu.RLock()
	keys := make([]uint64, len(m.keys))
	copy(keys, m.keys)
	m.mu.RUnlock()

	for _, id := range keys {
		m.mu.RLock()
		value, ok := m.records[id]
		if ok {
			value = cloneBytes(value)
		}
		m.mu.RUnlock()
		if !ok {
			continue
		}
		if err := fn(id, value); err != nil {
			if err == ErrStop {
				return nil
			}
			return err
		}
	}
	return nil
}

// MemoryCell is an in-process Cell.
type MemoryCell struct {
	mu    sync.Mutex
	value uint64
}

func NewMemoryCell() *MemoryCell { return &MemoryCell{} }

func (c *MemoryCell) Get(context.Context) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, nil
}

func (c *MemoryCell) Set(_ context.Context, v uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var (
	_ ByteStore = (*Memory)(nil)
	_ Cell      = (*MemoryCell)(nil)
)
