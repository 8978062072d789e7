package store

import (
	"sync"
	"time"
)

// Memory is an in-memory journal for testing and for runs without -db.
type Memory struct {
	mu     sync.RWMutex
	items  []Generation
	nextID int64
}

// NewMemory creates a new in-memory store.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Append records a generation.
func (m *Memory) Append(g Generation) (Generation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g.ID = m.nextID
	m.nextID++
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	m.items = append(m.items, g)
	return g, nil
}

// Recent returns up to limit generations, newest first.
func (m *Memory) Recent(limit int) ([]Generation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Generation, 0, n)
	for i := len(m.items) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

// Close is a no-op for memory store.
func (m *Memory) Close() error {
	return nil
}
