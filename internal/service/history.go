package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

// HistoryRecorder is the append-only log of posts the local user created.
// Entries are creation-time snapshots: later reactions and responders on the
// live post never propagate back here.
type HistoryRecorder struct {
	store  PersistentStore
	logger *slog.Logger
	now    func() time.Time
}

func NewHistoryRecorder(store PersistentStore, logger *slog.Logger) *HistoryRecorder {
	return &HistoryRecorder{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (h *HistoryRecorder) Record(ctx context.Context, p domain.Post) error {
	entry := domain.HistoryEntry{
		Post:       p.Snapshot(),
		RecordedAt: h.now().UTC(),
	}
	if err := h.store.Append(ctx, entry); err != nil {
		return e.Wrap("history.Record", err)
	}
	return nil
}

// List returns recorded entries newest first.
func (h *HistoryRecorder) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	entries, err := h.store.ReadAll(ctx)
	if err != nil {
		return nil, e.Wrap("history.List", err)
	}
	out := make([]domain.HistoryEntry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	return out, nil
}
