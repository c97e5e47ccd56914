package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Ravishrk124/helpnet.in/internal/config"
	"github.com/Ravishrk124/helpnet.in/internal/demo"
	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/geo"
	"github.com/Ravishrk124/helpnet.in/internal/notify"
	"github.com/Ravishrk124/helpnet.in/internal/redis"
	"github.com/Ravishrk124/helpnet.in/internal/service"
	"github.com/Ravishrk124/helpnet.in/internal/storage/postgres"
	"github.com/Ravishrk124/helpnet.in/internal/store"
	"github.com/Ravishrk124/helpnet.in/internal/ui"
	"github.com/Ravishrk124/helpnet.in/internal/workers"
	"github.com/Ravishrk124/helpnet.in/pkg/logger"
)

type Components struct {
	logger *slog.Logger
	cfg    *config.Config

	Loop   *service.Loop
	Board  *service.Board
	Ticker *workers.StatusTicker

	Redis    *redis.Redis
	Postgres *postgres.Postgres
}

func InitComponents(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Components, error) {
	c := &Components{logger: log, cfg: cfg}

	history, err := c.initHistoryBackend(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to init history backend: %w", err)
	}

	renderer, err := ui.NewConsoleRenderer(os.Stdout, log)
	if err != nil {
		return nil, fmt.Errorf("failed to init renderer: %w", err)
	}

	c.Loop = service.NewLoop(log, 128)

	var seeder service.Seeder
	if cfg.Board.DemoSeed {
		seeder = demo.NewSeeder(time.Now().UnixNano())
	}

	home := service.BoardDeps{
		Store:    store.NewPostStore(),
		History:  service.NewHistoryRecorder(history, log),
		Renderer: renderer,
		Map:      ui.NewLogMapWidget(log),
		Notifier: notify.New(ctx, log, cfg.Board.NotifyTTL, 2, 8),
		// A real deployment swaps this for a device geolocation source.
		Location: geo.NewFixedProvider(log, domain.Location{
			Lat: cfg.Board.HomeLat,
			Lon: cfg.Board.HomeLon,
		}, 500*time.Millisecond),
		Network:  geo.StaticNetwork{Online: true},
		Prompter: ui.NewStdinPrompter(os.Stdin, os.Stdout),
		Seeder:   seeder,
	}

	c.Board = service.NewBoard(log, c.Loop, home)
	c.Ticker = workers.NewStatusTicker(c.Board, cfg.Board.TickInterval, log)

	log.Info("components initialized",
		slog.String("history_backend", string(cfg.History.Backend)),
		slog.Bool("demo_seed", cfg.Board.DemoSeed),
	)
	return c, nil
}

func (c *Components) initHistoryBackend(ctx context.Context) (service.PersistentStore, error) {
	switch c.cfg.History.Backend {
	case config.HistoryRedis:
		rdb, err := redis.NewRedis(ctx, c.cfg, c.logger)
		if err != nil {
			return nil, err
		}
		c.Redis = rdb

		theme := redis.NewThemeStore(rdb)
		if current, err := theme.Get(ctx); err == nil {
			c.logger.Info("theme preference loaded", slog.String("theme", current))
		}
		return redis.NewHistoryStore(rdb), nil

	case config.HistoryPostgres:
		pg, err := postgres.NewPostgres(ctx, c.cfg, c.logger)
		if err != nil {
			return nil, err
		}
		c.Postgres = pg
		return pg.History, nil

	default:
		return service.NewMemoryHistory(), nil
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("shutting down components")

	if c.Postgres != nil {
		c.Postgres.Pool.Close()
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("redis close failed", slog.String("error", err.Error()))
		}
	}

	c.logger.Info("all components stopped", slog.Duration("latency", time.Since(start)))
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}
