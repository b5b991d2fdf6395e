package cache

import (
	"context"
	"path"
	"sort"
	"sync"

	"github.com/tair/inventory-information/internal/inventory/domain"
)

// MemoryStore is an in-process domain.FastStore. It is used when Redis is
// not reachable at startup and in tests.
type MemoryStore struct {
	mu        sync.Mutex
	values    map[string]string
	lists     map[string][]string
	listLimit int
}

var _ domain.FastStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. Lists keep at most listLimit of
// their newest entries; a limit <= 0 keeps everything.
func NewMemoryStore(listLimit int) *MemoryStore {
	return &MemoryStore{
		values:    make(map[string]string),
		lists:     make(map[string][]string),
		listLimit: listLimit,
	}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	delete(m.lists, key)
	return nil
}

// KeysMatching supports the glob syntax of path.Match, which covers the
// '*' patterns used for level keys. Keys are returned sorted.
func (m *MemoryStore) KeysMatching(_ context.Context, pattern string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := []string{}
	for k := range m.values {
		ok, err := path.Match(pattern, k)
		if err != nil {
			return nil, err
		}
		if ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *MemoryStore) ListAppend(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append(m.lists[key], value)
	if m.listLimit > 0 && len(list) > m.listLimit {
		list = list[len(list)-m.listLimit:]
	}
	m.lists[key] = list
	return nil
}

func (m *MemoryStore) ListRange(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.lists[key]))
	copy(out, m.lists[key])
	return out, nil
}
