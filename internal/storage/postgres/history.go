package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

// HistoryStore keeps the user's created-post snapshots in a single table,
// one JSON document per entry. Rows are insert-only.
type HistoryStore struct {
	pool *pgxpool.Pool
}

func NewHistoryStore(pool *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

func (s *HistoryStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS post_history (
			id          BIGSERIAL PRIMARY KEY,
			post_id     UUID        NOT NULL,
			snapshot    JSONB       NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL
		)`)
	return e.WrapError(ctx, "storage.pg.history.EnsureSchema", err)
}

func (s *HistoryStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	snapshot, err := json.Marshal(entry.Post)
	if err != nil {
		return e.Wrap("storage.pg.history.Append", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO post_history (post_id, snapshot, recorded_at) VALUES ($1, $2, $3)`,
		entry.Post.ID, snapshot, entry.RecordedAt,
	)
	return e.WrapError(ctx, "storage.pg.history.Append", err)
}

// ReadAll returns entries oldest first; the recorder reverses for display.
func (s *HistoryStore) ReadAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT snapshot, recorded_at FROM post_history ORDER BY id ASC`)
	if err != nil {
		return nil, e.WrapError(ctx, "storage.pg.history.ReadAll", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var (
			snapshot []byte
			entry    domain.HistoryEntry
		)
		if err := rows.Scan(&snapshot, &entry.RecordedAt); err != nil {
			return nil, e.WrapError(ctx, "storage.pg.history.ReadAll", err)
		}
		if err := json.Unmarshal(snapshot, &entry.Post); err != nil {
			return nil, e.Wrap("storage.pg.history.ReadAll", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "storage.pg.history.ReadAll", err)
	}
	return entries, nil
}
