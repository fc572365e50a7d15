package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/quasilyte/gdata"
)

const (
	DefaultInt    = 0
	DefaultFloat  = 0.0
	DefaultString = "NULL"
)

// Backend is a flat key/value item store. gdata.Manager satisfies it.
type Backend interface {
	SaveItem(key string, data []byte) error
	LoadItem(key string) ([]byte, error)
	DeleteItem(key string) error
	ItemExists(key string) bool
}

var (
	_ Backend = (*gdata.Manager)(nil)
	_ Backend = (*Memory)(nil)
)

type kind string

const (
	kindInt    kind = "int"
	kindFloat  kind = "float"
	kindString kind = "string"
)

type record struct {
	Kind   kind    `json:"kind"`
	Int    int     `json:"int,omitempty"`
	Float  float64 `json:"float,omitempty"`
	String string  `json:"string,omitempty"`
}

// Store keeps typed settings values. Reads of a missing key, or of a key
// holding another type, return the type's default. Every write is flushed to
// the backend immediately; existence is always answered by the backend.
//
// The backend cannot list its items, so Keys and DeleteAll cover the keys the
// store was opened with plus every key written through it.
type Store struct {
	mu      sync.Mutex
	backend Backend
	known   map[string]struct{}
}

// Open wraps backend. keys names the settings the caller may have persisted
// in earlier runs.
func Open(backend Backend, keys ...string) (*Store, error) {
	if backend == nil {
		return nil, errors.New("save: nil backend")
	}
	s := &Store{backend: backend, known: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		s.known[k] = struct{}{}
	}
	return s, nil
}

// OpenDisk opens the per-user gdata storage for appName.
func OpenDisk(appName string, keys ...string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("save: open %s: %w", appName, err)
	}
	return Open(m, keys...)
}

func (s *Store) SaveInt(key string, v int) error {
	return s.put(key, record{Kind: kindInt, Int: v})
}

func (s *Store) SaveFloat(key string, v float64) error {
	return s.put(key, record{Kind: kindFloat, Float: v})
}

func (s *Store) SaveString(key string, v string) error {
	return s.put(key, record{Kind: kindString, String: v})
}

func (s *Store) Int(key string) int {
	r, ok := s.get(key)
	if !ok || r.Kind != kindInt {
		return DefaultInt
	}
	return r.Int
}

func (s *Store) Float(key string) float64 {
	r, ok := s.get(key)
	if !ok || r.Kind != kindFloat {
		return DefaultFloat
	}
	return r.Float
}

func (s *Store) String(key string) string {
	r, ok := s.get(key)
	if !ok || r.Kind != kindString {
		return DefaultString
	}
	return r.String
}

func (s *Store) KeyExists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.ItemExists(key)
}

// Keys lists the known keys present in the backend, sorted.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.known))
	for k := range s.known {
		if s.backend.ItemExists(k) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) DeleteKey(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.DeleteItem(key); err != nil {
		return fmt.Errorf("save: delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.known))
	for k := range s.known {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := s.backend.DeleteItem(k); err != nil {
			return fmt.Errorf("save: delete %s: %w", k, err)
		}
	}
	return nil
}

func (s *Store) put(key string, r record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("save: encode %s: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveItem(key, data); err != nil {
		return fmt.Errorf("save: write %s: %w", key, err)
	}
	s.known[key] = struct{}{}
	return nil
}

func (s *Store) get(key string) (record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.backend.LoadItem(key)
	if err != nil || len(data) == 0 {
		return record{}, false
	}
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return record{}, false
	}
	return r, true
}

// Memory is an in-process Backend.
type Memory struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string][]byte)}
}

func (m *Memory) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte{}, data...)
	return nil
}

func (m *Memory) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.items[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// DeleteItem removes key. Deleting a missing key is not an error.
func (m *Memory) DeleteItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

func (m *Memory) ItemExists(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[key]
	return ok
}

func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
