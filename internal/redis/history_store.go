package redis

import (
	"context"
	"encoding/json"
	"errors"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

// HistoryStore persists the user's created posts as a redis list of JSON
// snapshots. Append-only: nothing in the engine ever rewrites an entry.
type HistoryStore struct {
	client *goredis.Client
	key    string
}

func NewHistoryStore(r *Redis) *HistoryStore {
	return &HistoryStore{
		client: r.Client,
		key:    "helpnet:history",
	}
}

func (s *HistoryStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return e.Wrap("redis.history.Append", err)
	}
	return s.client.RPush(ctx, s.key, b).Err()
}

// ReadAll returns entries oldest first, matching the append order; the
// recorder reverses for display.
func (s *HistoryStore) ReadAll(ctx context.Context) ([]domain.HistoryEntry, error) {
	raw, err := s.client.LRange(ctx, s.key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, e.Wrap("redis.history.ReadAll", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, e.Wrap("redis.history.ReadAll", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
