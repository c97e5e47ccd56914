package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ravishrk124/helpnet.in/internal/config"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

type Postgres struct {
	Pool    *pgxpool.Pool
	History *HistoryStore
}

func NewPostgres(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Postgres, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host,
		cfg.Postgres.Port,
		cfg.Postgres.User,
		cfg.Postgres.Password,
		cfg.Postgres.Database,
		cfg.Postgres.SSLMode,
	)

	pgCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.ParseConfig", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, e.Wrap("storage.pg.NewPostgres.NewWithConfig", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, e.Wrap("storage.pg.NewPostgres.Ping", err)
	}
	logger.Info("connected to postgres", slog.String("database", cfg.Postgres.Database))

	history := NewHistoryStore(pool)
	if err := history.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Postgres{
		Pool:    pool,
		History: history,
	}, nil
}
