package store

import (
	"testing"

	"enstracker/internal/database"
	custom_error "enstracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type document struct {
	Tag    string `json:"tag"`
	Status string `json:"status"`
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	defer db.Close()

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	docs := []document{{Tag: "ENS-L-001", Status: "Available"}}
	require.NoError(t, s.Write("ensInventory", docs))

	var got []document
	ok, err := ReadInto(s, "ensInventory", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, docs, got)
}

func TestSQLiteStoreWriteReplaces(t *testing.T) {
	db, err := database.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	defer db.Close()

	s, err := NewSQLiteStore(db)
	require.NoError(t, err)

	require.NoError(t, s.Write("ensInventory", []document{{Tag: "A"}, {Tag: "B"}}))
	require.NoError(t, s.Write("ensInventory", []document{{Tag: "C"}}))

	var got []document
	_, err = ReadInto(s, "ensInventory", &got)
	require.NoError(t, err)
	assert.Equal(t, []document{{Tag: "C"}}, got)
}

func TestReadAbsentKeyIsNotAnError(t *testing.T) {
	s := NewMemoryStore()

	var got []document
	ok, err := ReadInto(s, "ensInventory", &got)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestReadCorruptValueFails(t *testing.T) {
	s := NewMemoryStore()
	s.Corrupt("ensActivity")

	var got []document
	_, err := ReadInto(s, "ensActivity", &got)
	require.Error(t, err)

	var corrupt *custom_error.CorruptStateError
	assert.ErrorAs(t, err, &corrupt)
	assert.Equal(t, "ensActivity", corrupt.Key())
}

func TestSeedIfAbsent(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, SeedIfAbsent(s, "ensInventory", []document{{Tag: "SEED"}}))
	require.NoError(t, SeedIfAbsent(s, "ensInventory", []document{{Tag: "OTHER"}}))

	var got []document
	_, err := ReadInto(s, "ensInventory", &got)
	require.NoError(t, err)
	assert.Equal(t, []document{{Tag: "SEED"}}, got)
}

func TestSeedIfAbsentDoesNotMaskCorruption(t *testing.T) {
	s := NewMemoryStore()
	s.Corrupt("ensInventory")

	// The corrupt value must stay in place until recovery is explicit.
	err := SeedIfAbsent(s, "ensInventory", []document{{Tag: "SEED"}})
	var corrupt *custom_error.CorruptStateError
	require.ErrorAs(t, err, &corrupt)

	raw, ok, _ := s.Read("ensInventory")
	assert.True(t, ok)
	assert.Nil(t, raw)
}

func TestResetCorrupt(t *testing.T) {
	s := NewMemoryStore()
	s.Corrupt("ensInventory")

	require.NoError(t, ResetCorrupt(s, "ensInventory", []document{}, zap.NewNop()))

	var got []document
	ok, err := ReadInto(s, "ensInventory", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}
