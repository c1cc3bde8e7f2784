package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/hourbill/hourbill/internal/domain/download"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

// InMemoryDownloadStore implements download.Repository
type InMemoryDownloadStore struct {
	mu sync.RWMutex
	// keyed by userID + "/" + billingMonth
	records map[string]*download.DownloadRecord
}

// NewInMemoryDownloadStore creates a new in-memory download record repository
func NewInMemoryDownloadStore() *InMemoryDownloadStore {
	return &InMemoryDownloadStore{
		records: make(map[string]*download.DownloadRecord),
	}
}

// Clear resets all stored data
func (m *InMemoryDownloadStore) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = make(map[string]*download.DownloadRecord)
}

func (m *InMemoryDownloadStore) Get(ctx context.Context, userID, billingMonth string) (*download.DownloadRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[userID+"/"+billingMonth]
	if !ok {
		return nil, nil
	}
	clone := *r
	return &clone, nil
}

func (m *InMemoryDownloadStore) Set(ctx context.Context, record *download.DownloadRecord) error {
	if record == nil {
		return ierr.NewError("download record cannot be nil").
			WithHint("Download record cannot be nil").
			Mark(ierr.ErrValidation)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	key := record.UserID + "/" + record.BillingMonth
	if existing, ok := m.records[key]; ok {
		existing.DownloadedAt = time.Now().UTC()
		return nil
	}
	clone := *record
	m.records[key] = &clone
	return nil
}
