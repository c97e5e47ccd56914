package workers

import (
	"context"
	"log/slog"
	"time"
)

// StatusRefresher is the board entry point the ticker drives. It only updates
// age/status text of displayed posts; it never re-sorts or re-filters.
type StatusRefresher interface {
	RefreshStatuses()
}

// StatusTicker periodically asks the board to refresh displayed post
// statuses so "N min ago" lines and expiry badges stay current.
type StatusTicker struct {
	board    StatusRefresher
	interval time.Duration
	logger   *slog.Logger
}

func NewStatusTicker(board StatusRefresher, interval time.Duration, logger *slog.Logger) *StatusTicker {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &StatusTicker{
		board:    board,
		interval: interval,
		logger:   logger,
	}
}

func (w *StatusTicker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug("status ticker started", slog.Duration("interval", w.interval))
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("status ticker stopped")
			return
		case <-ticker.C:
			w.board.RefreshStatuses()
		}
	}
}
