package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	custom_error "enstracker/pkg/errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
)

const stateTable = "app_state"

// SQLiteStore keeps every collection as one JSON document in a single
// key/value table of an embedded database file.
type SQLiteStore struct {
	db      *sql.DB
	wrapper *goqu.Database
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	s := &SQLiteStore{
		db:      db,
		wrapper: goqu.New("sqlite3", db),
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS app_state (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		return nil, fmt.Errorf("failed to prepare state table: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Read(key string) (json.RawMessage, bool, error) {
	var value string

	query := s.wrapper.Select("value").From(stateTable).Where(goqu.Ex{"key": key})

	found, err := query.Executor().ScanVal(&value)
	if err != nil {
		return nil, false, fmt.Errorf("unable to select state for key %q: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}

	raw := json.RawMessage(value)
	if !json.Valid(raw) {
		return nil, true, custom_error.NewCorruptState(key, fmt.Errorf("stored value is not valid JSON"))
	}

	return raw, true, nil
}

func (s *SQLiteStore) Write(key string, value interface{}) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode value for key %q: %w", key, err)
	}

	query := s.wrapper.Insert(stateTable).
		Rows(goqu.Record{"key": key, "value": string(encoded)}).
		OnConflict(goqu.DoUpdate("key", goqu.Record{"value": string(encoded)}))

	if _, err := query.Executor().Exec(); err != nil {
		return fmt.Errorf("failed to write state for key %q: %w", key, err)
	}

	return nil
}
