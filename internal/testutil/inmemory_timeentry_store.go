package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hourbill/hourbill/internal/domain/timeentry"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

// InMemoryTimeEntryStore implements timeentry.Repository
type InMemoryTimeEntryStore struct {
	mu sync.RWMutex
	// keyed by entry ID
	entries map[string]*timeentry.TimeEntry
	// simulated failure for list operations
	listErr error
}

// NewInMemoryTimeEntryStore creates a new in-memory time entry repository
func NewInMemoryTimeEntryStore() *InMemoryTimeEntryStore {
	return &InMemoryTimeEntryStore{
		entries: make(map[string]*timeentry.TimeEntry),
	}
}

// Clear resets all stored data
func (m *InMemoryTimeEntryStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*timeentry.TimeEntry)
	m.listErr = nil
}

// SetListError makes subsequent ListByDateRange calls fail with err
func (m *InMemoryTimeEntryStore) SetListError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listErr = err
}

func (m *InMemoryTimeEntryStore) Upsert(ctx context.Context, entry *timeentry.TimeEntry) error {
	if entry == nil {
		return ierr.NewError("entry cannot be nil").
			WithHint("Entry cannot be nil").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// one entry per (user_id, date): replace in place, keeping the
	// original ID and creation time
	for _, existing := range m.entries {
		if existing.UserID == entry.UserID && existing.Date == entry.Date {
			existing.Hours = entry.Hours
			existing.Description = entry.Description
			existing.Notes = entry.Notes
			existing.UpdatedAt = time.Now().UTC()
			return nil
		}
	}

	clone := *entry
	m.entries[entry.ID] = &clone
	return nil
}

func (m *InMemoryTimeEntryStore) GetByDate(ctx context.Context, userID, date string) (*timeentry.TimeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.UserID == userID && e.Date == date {
			clone := *e
			return &clone, nil
		}
	}
	return nil, ierr.NewError("time entry not found").
		WithHintf("No time entry found for %s", date).
		Mark(ierr.ErrNotFound)
}

func (m *InMemoryTimeEntryStore) ListByDateRange(ctx context.Context, userID, from, to string) ([]*timeentry.TimeEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	result := make([]*timeentry.TimeEntry, 0)
	for _, e := range m.entries {
		if e.UserID == userID && e.Date >= from && e.Date <= to {
			clone := *e
			result = append(result, &clone)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})
	return result, nil
}

func (m *InMemoryTimeEntryStore) Delete(ctx context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[id]
	if !ok || e.UserID != userID {
		return ierr.NewError("time entry not found").
			WithHintf("No time entry found with ID %s", id).
			Mark(ierr.ErrNotFound)
	}
	delete(m.entries, id)
	return nil
}
