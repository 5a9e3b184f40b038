package storage

import (
	"context"
	"sync"

	"cruisebook/internal/domain"
)

// Memory is an in-process Store. State is lost on restart; it backs tests
// and throwaway development runs.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	blob := make([]byte, len(value))
	copy(blob, value)
	m.mu.Lock()
	m.blobs[key] = blob
	m.mu.Unlock()
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}
