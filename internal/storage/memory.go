package storage

import (
	"context"
	"sync"
)

// MemoryStorage is the in-process Store used when neither a database DSN nor
// a file path is configured. Safe for concurrent use.
type MemoryStorage struct {
	mu      sync.RWMutex
	records map[string]URLRecord
}

// CreateMemoryStorage returns an empty in-memory store.
func CreateMemoryStorage() (*MemoryStorage, error) {
	return &MemoryStorage{
		records: make(map[string]URLRecord),
	}, nil
}

// Get implements Store.
func (m *MemoryStorage) Get(_ context.Context, id string) (URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	if !ok {
		return URLRecord{}, ErrNotFound
	}
	return r, nil
}

// Put implements Store. Existing ids are never overwritten.
func (m *MemoryStorage) Put(_ context.Context, record URLRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; ok {
		return ErrDuplicateID
	}
	m.records[record.ID] = record
	return nil
}

// Update implements Store with compare-and-set on the record version.
func (m *MemoryStorage) Update(_ context.Context, record URLRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.records[record.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != record.Version {
		return ErrVersionMismatch
	}
	record.Version++
	m.records[record.ID] = record
	return nil
}

// Delete implements Store.
func (m *MemoryStorage) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

// List implements Store.
func (m *MemoryStorage) List(_ context.Context) ([]URLRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]URLRecord, 0, len(m.records))
	for _, r := range m.records {
		records = append(records, r)
	}
	return records, nil
}

// Ping implements Store. The in-memory store is always available.
func (m *MemoryStorage) Ping(_ context.Context) error {
	return nil
}

// Close implements Store.
func (m *MemoryStorage) Close() error {
	return nil
}
