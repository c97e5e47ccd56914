package service

import (
	"context"
	"log/slog"
)

// Loop is the single-threaded cooperative executor: every external stimulus
// (user action, location result, prompt completion, tick) becomes a closure
// drained by one goroutine, so no mutation is ever in flight while a
// projection runs.
type Loop struct {
	logger *slog.Logger
	events chan func()
}

func NewLoop(logger *slog.Logger, buffer int) *Loop {
	if buffer <= 0 {
		buffer = 128
	}
	return &Loop{
		logger: logger,
		events: make(chan func(), buffer),
	}
}

func (l *Loop) Post(fn func()) {
	l.events <- fn
}

func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("event loop stopped", slog.String("reason", ctx.Err().Error()))
			return
		case fn := <-l.events:
			fn()
		}
	}
}

// InlineDispatcher runs events immediately on the caller. Tests use it to
// keep board operations synchronous.
type InlineDispatcher struct{}

func (InlineDispatcher) Post(fn func()) { fn() }
