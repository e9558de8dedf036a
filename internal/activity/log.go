// Package activity owns the bounded, most-recent-first log of domain events.
package activity

import (
	"fmt"
	"sync"
	"time"

	"enstracker/internal/store"
	"enstracker/pkg/models"

	"go.uber.org/zap"
)

const activityKey = "ensActivity"

// RetentionCap is the fixed maximum log length; the oldest entries are
// evicted once it is exceeded.
const RetentionCap = 200

type Log struct {
	store store.Store
	now   func() time.Time

	mu  sync.Mutex
	seq uint64
}

func NewLog(s store.Store) *Log {
	return &Log{store: s, now: time.Now}
}

// Append constructs an entry with a fresh ref and the current timestamp,
// prepends it, truncates the log to the retention cap and persists the
// result.
func (l *Log) Append(entryType, details, user string) (*models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	if _, err := store.ReadInto(l.store, activityKey, &entries); err != nil {
		return nil, err
	}

	now := l.now()
	entry := models.ActivityEntry{
		Ref:     l.nextRef(now),
		Type:    entryType,
		User:    user,
		Date:    now.UTC().Format(time.RFC3339),
		Details: details,
	}

	entries = append([]models.ActivityEntry{entry}, entries...)
	if len(entries) > RetentionCap {
		entries = entries[:RetentionCap]
	}

	if err := l.store.Write(activityKey, entries); err != nil {
		return nil, fmt.Errorf("failed to persist activity log: %w", err)
	}

	return &entry, nil
}

// Recent returns the first n entries; the log is already most-recent-first.
func (l *Log) Recent(n int) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	ok, err := store.ReadInto(l.store, activityKey, &entries)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.ActivityEntry{}, nil
	}

	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}

	return entries, nil
}

// Seed initializes the log to an empty collection when the key is absent.
func (l *Log) Seed() error {
	return store.SeedIfAbsent(l.store, activityKey, []models.ActivityEntry{})
}

// Reset is the corruption recovery policy: log and start over with an empty
// log.
func (l *Log) Reset(logger *zap.Logger) error {
	return store.ResetCorrupt(l.store, activityKey, []models.ActivityEntry{}, logger)
}

// nextRef derives a ref from the low-order digits of the millisecond
// timestamp plus a process-local sequence, so a burst of writes within the
// same millisecond still yields distinct refs.
func (l *Log) nextRef(now time.Time) string {
	l.mu.Lock()
	l.seq++
	seq := l.seq
	l.mu.Unlock()

	return fmt.Sprintf("LOG-%04d-%03d", now.UnixMilli()%10000, seq%1000)
}
