package geo

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

// FixedProvider resolves to a configured location after a short simulated
// acquisition delay. It stands in for a real geolocation source; the board
// only sees the one-shot callback contract.
type FixedProvider struct {
	logger *slog.Logger
	loc    domain.Location
	delay  time.Duration
}

func NewFixedProvider(logger *slog.Logger, loc domain.Location, delay time.Duration) *FixedProvider {
	return &FixedProvider{logger: logger, loc: loc, delay: delay}
}

// Request delivers exactly one result. The context bounds the wait: when it
// expires first the request fails with ErrLocationUnavailable.
func (p *FixedProvider) Request(ctx context.Context, done func(domain.Location, error)) {
	go func() {
		select {
		case <-time.After(p.delay):
			p.logger.Debug("location acquired",
				slog.Float64("lat", p.loc.Lat),
				slog.Float64("lon", p.loc.Lon),
			)
			done(p.loc, nil)
		case <-ctx.Done():
			p.logger.Warn("location request timed out", slog.Any("error", ctx.Err()))
			done(domain.Location{}, e.ErrLocationUnavailable)
		}
	}()
}

// StaticNetwork reports a fixed connectivity state once on subscribe. A real
// watcher would keep firing on changes; the board contract is the same.
type StaticNetwork struct {
	Online bool
}

func (w StaticNetwork) Subscribe(onChange func(online bool)) {
	go onChange(w.Online)
}
