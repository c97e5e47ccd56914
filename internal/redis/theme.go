package redis

import (
	"context"
	"errors"

	goredis "github.com/redis/go-redis/v9"
)

const (
	themeKey     = "helpnet:theme"
	defaultTheme = "light"
)

// ThemeStore persists the UI theme preference across sessions.
type ThemeStore struct {
	client *goredis.Client
}

func NewThemeStore(r *Redis) *ThemeStore {
	return &ThemeStore{client: r.Client}
}

func (s *ThemeStore) Get(ctx context.Context) (string, error) {
	theme, err := s.client.Get(ctx, themeKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return defaultTheme, nil
		}
		return "", err
	}
	return theme, nil
}

func (s *ThemeStore) Set(ctx context.Context, theme string) error {
	return s.client.Set(ctx, themeKey, theme, 0).Err()
}
