package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string         `json:"env"`
	Board    BoardConfig    `json:"board"`
	History  HistoryConfig  `json:"history"`
	Redis    RedisConfig    `json:"redis"`
	Postgres PostgresConfig `json:"postgres"`
}

type BoardConfig struct {
	TickInterval    time.Duration `json:"tick_interval"`
	LocationTimeout time.Duration `json:"location_timeout"`
	NotifyTTL       time.Duration `json:"notify_ttl"`
	DemoSeed        bool          `json:"demo_seed"`
	HomeLat         float64       `json:"home_lat"`
	HomeLon         float64       `json:"home_lon"`
}

type HistoryBackend string

const (
	HistoryMemory   HistoryBackend = "memory"
	HistoryRedis    HistoryBackend = "redis"
	HistoryPostgres HistoryBackend = "postgres"
)

type HistoryConfig struct {
	Backend HistoryBackend `json:"backend"`
}

type RedisConfig struct {
	Addr     string `json:"addr"`
	Password string `json:"password,omitempty"`
	DB       int    `json:"db"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`
}

func Load(ctx context.Context) (*Config, error) {
	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Board: BoardConfig{
			TickInterval:    getEnvDuration("TICK_INTERVAL", 15*time.Second),
			LocationTimeout: getEnvDuration("LOCATION_TIMEOUT", 10*time.Second),
			NotifyTTL:       getEnvDuration("NOTIFY_TTL", 10*time.Second),
			DemoSeed:        getEnvBool("DEMO_SEED", true),
			HomeLat:         getEnvFloat("HOME_LAT", 28.6139),
			HomeLon:         getEnvFloat("HOME_LON", 77.2090),
		},
		History: HistoryConfig{
			Backend: HistoryBackend(getEnv("HISTORY_BACKEND", "memory")),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			Database: getEnv("POSTGRES_DB", "helpnet"),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:  getEnv("POSTGRES_SSL_MODE", "disable"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.History.Backend {
	case HistoryMemory, HistoryRedis, HistoryPostgres:
	default:
		return errors.New("HISTORY_BACKEND must be one of memory|redis|postgres")
	}
	if c.Board.TickInterval <= 0 {
		return errors.New("TICK_INTERVAL must be positive")
	}
	if c.Board.LocationTimeout <= 0 {
		return errors.New("LOCATION_TIMEOUT must be positive")
	}
	if c.Board.HomeLat < -90 || c.Board.HomeLat > 90 {
		return errors.New("HOME_LAT out of range")
	}
	if c.Board.HomeLon < -180 || c.Board.HomeLon > 180 {
		return errors.New("HOME_LON out of range")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
