package store

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[string]storedExpr // namespace -> name -> entry
	closed bool
}

// storedExpr holds an encoded tree with metadata for List().
type storedExpr struct {
	data      []byte
	sequence  int
	timestamp time.Time
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]storedExpr),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(namespace, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.data[namespace] == nil {
		m.data[namespace] = make(map[string]storedExpr)
	}

	// Next sequence within the namespace
	seq := 1
	for _, entry := range m.data[namespace] {
		if entry.sequence >= seq {
			seq = entry.sequence + 1
		}
	}

	// Copy data to avoid retaining the caller's slice
	stored := make([]byte, len(data))
	copy(stored, data)

	m.data[namespace][name] = storedExpr{
		data:      stored,
		sequence:  seq,
		timestamp: time.Now().UTC(),
	}

	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(namespace, name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	ns, ok := m.data[namespace]
	if !ok {
		return nil, ErrNotFound
	}

	entry, ok := ns[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(entry.data))
	copy(result, entry.data)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List(namespace string) ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	ns, ok := m.data[namespace]
	if !ok {
		return nil, nil
	}

	infos := make([]Info, 0, len(ns))
	for name, entry := range ns {
		infos = append(infos, Info{
			Namespace: namespace,
			Name:      name,
			Sequence:  entry.sequence,
			Timestamp: entry.timestamp,
			Size:      int64(len(entry.data)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Sequence < infos[j].Sequence
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(namespace, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if ns, ok := m.data[namespace]; ok {
		delete(ns, name)
	}
	return nil
}

// DeleteNamespace implements Store.
func (m *MemoryStore) DeleteNamespace(namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.data, namespace)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.data = nil
	return nil
}

// Len returns the total number of entries across all namespaces.
// Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, ns := range m.data {
		count += len(ns)
	}
	return count
}
