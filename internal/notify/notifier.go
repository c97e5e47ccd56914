// Package notify implements the toast notifier: fire-and-forget messages that
// auto-dismiss after a fixed lifetime, throttled so a burst of board events
// cannot flood the user.
package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Ravishrk124/helpnet.in/internal/service"
)

type Toast struct {
	Message     string
	Severity    service.Severity
	RelatedPost uuid.UUID
	ShownAt     time.Time
}

type Notifier struct {
	logger  *slog.Logger
	limiter *rate.Limiter
	ttl     time.Duration
	ctx     context.Context
}

// New builds a notifier whose toasts live for ttl (the board uses 10s) and
// which admits at most rps messages per second with the given burst.
func New(ctx context.Context, logger *slog.Logger, ttl time.Duration, rps, burst int) *Notifier {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &Notifier{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		ttl:     ttl,
		ctx:     ctx,
	}
}

func (n *Notifier) Notify(msg string, severity service.Severity, relatedPost uuid.UUID) {
	if !n.limiter.Allow() {
		n.logger.Warn("notification dropped by rate limit", slog.String("message", msg))
		return
	}

	attrs := []any{slog.String("severity", string(severity))}
	if relatedPost != uuid.Nil {
		attrs = append(attrs, slog.String("post_id", relatedPost.String()))
	}

	switch severity {
	case service.SeverityError:
		n.logger.Error("🔔 "+msg, attrs...)
	default:
		n.logger.Info("🔔 "+msg, attrs...)
	}

	go n.dismissLater(msg)
}

func (n *Notifier) dismissLater(msg string) {
	select {
	case <-time.After(n.ttl):
		n.logger.Debug("notification dismissed", slog.String("message", msg))
	case <-n.ctx.Done():
	}
}
