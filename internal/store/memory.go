package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV used by tests and by the --db :memory: mode.
type Memory struct {
	mu   sync.Mutex
	data map[string]string

	// Fail hooks let tests simulate an unavailable backend. A non-nil
	// return aborts the operation before any state changes.
	FailGet    func(key string) error
	FailSet    func(key string) error
	FailRemove func(key string) error
}

// NewMemory returns an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailGet != nil {
		if err := m.FailGet(key); err != nil {
			return "", false, err
		}
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailSet != nil {
		if err := m.FailSet(key); err != nil {
			return err
		}
	}
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailRemove != nil {
		if err := m.FailRemove(key); err != nil {
			return err
		}
	}
	delete(m.data, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
