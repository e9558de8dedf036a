// Package store is the persistent key-value layer underneath the inventory
// and the activity log. Values are JSON documents round-tripped exactly; a
// write fully replaces the prior value under its key.
package store

import (
	"encoding/json"

	custom_error "enstracker/pkg/errors"

	"go.uber.org/zap"
)

type Store interface {
	// Read returns the raw document under key. An absent key is reported via
	// the second return value, never as an error and never as corruption.
	Read(key string) (json.RawMessage, bool, error)

	// Write marshals value and synchronously replaces whatever was stored
	// under key.
	Write(key string, value interface{}) error
}

// ReadInto decodes the document under key into out. It reports false and
// leaves out untouched when the key is absent, and returns CorruptStateError
// when the stored value exists but cannot be decoded.
func ReadInto(s Store, key string, out interface{}) (bool, error) {
	raw, ok, err := s.Read(key)
	if err != nil || !ok {
		return ok, err
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return true, custom_error.NewCorruptState(key, err)
	}

	return true, nil
}

// SeedIfAbsent writes seed under key only when nothing is stored there yet.
// A corrupt value surfaces as an error rather than being overwritten:
// recovery from corruption is an explicit caller decision, never an implicit
// reseed.
func SeedIfAbsent(s Store, key string, seed interface{}) error {
	_, ok, err := s.Read(key)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	return s.Write(key, seed)
}

// ResetCorrupt is the recovery policy for CorruptStateError: log the
// occurrence and overwrite the key with a known-good value.
func ResetCorrupt(s Store, key string, seed interface{}, logger *zap.Logger) error {
	logger.Warn("resetting corrupt store key",
		zap.String("key", key),
	)
	return s.Write(key, seed)
}
