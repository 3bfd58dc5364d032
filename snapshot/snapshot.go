package snapshot

import (
	"context"
	"sync"
)

// Snapshot persists the serialized appointment list under one fixed key.
// There is no versioning and no migration: an absent snapshot simply means
// an empty appointment list at startup.
type Snapshot interface {
	// Load returns the last saved payload. ok is false when nothing has
	// been saved yet.
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Save(ctx context.Context, data []byte) error
}

// Memory keeps the snapshot in process memory, for tests.
type Memory struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ok {
		return nil, false, nil
	}
	data := make([]byte, len(m.data))
	copy(data, m.data)
	return data, true, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.ok = true
	return nil
}
