package service

import (
	"context"
	"sync"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

// MemoryHistory keeps history for the session only. Used as the default
// backend when neither redis nor postgres is configured, and in tests.
type MemoryHistory struct {
	mut     sync.Mutex
	entries []domain.HistoryEntry
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{}
}

func (m *MemoryHistory) Append(ctx context.Context, entry domain.HistoryEntry) error {
	m.mut.Lock()
	defer m.mut.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryHistory) ReadAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	m.mut.Lock()
	defer m.mut.Unlock()
	out := make([]domain.HistoryEntry, len(m.entries))
	copy(out, m.entries)
	return out, nil
}
