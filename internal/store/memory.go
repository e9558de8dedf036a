package store

import (
	"encoding/json"
	"fmt"
	"sync"

	custom_error "enstracker/pkg/errors"
)

// MemoryStore is the in-process Store used by tests. It honors the same
// absence-vs-corruption contract as the durable store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Read(key string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}

	if !json.Valid(raw) {
		return nil, true, custom_error.NewCorruptState(key, fmt.Errorf("stored value is not valid JSON"))
	}

	out := make(json.RawMessage, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *MemoryStore) Write(key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = encoded

	return nil
}

// Corrupt plants an unparsable value under key so tests can exercise the
// CorruptStateError path.
func (s *MemoryStore) Corrupt(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = json.RawMessage("{not json")
}
