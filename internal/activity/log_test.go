package activity

import (
	"fmt"
	"testing"
	"time"

	"enstracker/internal/store"
	custom_error "enstracker/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog() *Log {
	l := NewLog(store.NewMemoryStore())
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	l.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}
	return l
}

func TestAppendPrepends(t *testing.T) {
	l := newTestLog()

	_, err := l.Append("Asset Update", "Updated A-1", "Admin User")
	require.NoError(t, err)
	_, err = l.Append("Issuance", "Issued A-2 to Bob", "Admin User")
	require.NoError(t, err)

	entries, err := l.Recent(-1)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Issuance", entries[0].Type)
	assert.Equal(t, "Asset Update", entries[1].Type)
}

func TestAppendEnforcesRetentionCap(t *testing.T) {
	l := newTestLog()

	for i := 1; i <= RetentionCap+5; i++ {
		_, err := l.Append("Asset Update", fmt.Sprintf("entry #%d", i), "Admin User")
		require.NoError(t, err)
	}

	entries, err := l.Recent(-1)
	require.NoError(t, err)
	require.Len(t, entries, RetentionCap)

	// Survivors are exactly the 200 most recent, most-recent-first.
	assert.Equal(t, "entry #205", entries[0].Details)
	assert.Equal(t, "entry #6", entries[len(entries)-1].Details)
	for _, e := range entries {
		assert.NotEqual(t, "entry #1", e.Details)
	}
}

func TestRecentClipsToLength(t *testing.T) {
	l := newTestLog()
	for i := 0; i < 10; i++ {
		_, err := l.Append("Issuance", "details", "Admin User")
		require.NoError(t, err)
	}

	entries, err := l.Recent(5)
	require.NoError(t, err)
	assert.Len(t, entries, 5)

	entries, err = l.Recent(50)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}

func TestRecentOnEmptyStore(t *testing.T) {
	l := newTestLog()

	entries, err := l.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRefsAreDistinctWithinBursts(t *testing.T) {
	l := NewLog(store.NewMemoryStore())
	frozen := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return frozen }

	refs := map[string]bool{}
	for i := 0; i < 100; i++ {
		entry, err := l.Append("Asset Update", "burst", "Admin User")
		require.NoError(t, err)
		assert.False(t, refs[entry.Ref], "duplicate ref %s", entry.Ref)
		refs[entry.Ref] = true
	}
}

func TestEntryShape(t *testing.T) {
	l := newTestLog()

	entry, err := l.Append("Issuance", "Issued ENS-L-001 to Bob", "Admin User")
	require.NoError(t, err)

	assert.Regexp(t, `^LOG-\d{4}-\d{3}$`, entry.Ref)
	assert.Equal(t, "Admin User", entry.User)
	_, parseErr := time.Parse(time.RFC3339, entry.Date)
	assert.NoError(t, parseErr)
}

func TestCorruptActivitySurfaces(t *testing.T) {
	s := store.NewMemoryStore()
	s.Corrupt("ensActivity")
	l := NewLog(s)

	_, err := l.Append("Asset Update", "details", "Admin User")

	var corrupt *custom_error.CorruptStateError
	assert.ErrorAs(t, err, &corrupt)
}
