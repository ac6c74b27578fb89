// Package memkv provides an in-memory kv.Store for tests and DEV mode.
package memkv

import (
	"sort"
	"sync"

	"github.com/kidsmentor/portal/storage/kv"
)

type store struct {
	mu    sync.RWMutex
	table map[string][]byte
}

var _ kv.Store = (*store)(nil)

func Open() kv.Store {
	return &store{table: make(map[string][]byte)}
}

func (s *store) Load(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.table[key]
	if !ok {
		return nil, false, nil
	}
	cp := append([]byte(nil), data...)
	return cp, true, nil
}

func (s *store) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[key] = append([]byte(nil), data...)
	return nil
}

func (s *store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, key)
	return nil
}

func (s *store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.table))
	for k := range s.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *store) Close() error { return nil }
