//go:build integration

package redis

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

var (
	testRedis *Redis
	tc        testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("6379/tcp"),
			wait.ForLog("Ready to accept connections"),
		).WithDeadline(60 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "6379/tcp")

	client := goredis.NewClient(&goredis.Options{
		Addr: fmt.Sprintf("%s:%s", host, mappedPort.Port()),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		fmt.Println("redis ping:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}
	testRedis = &Redis{Client: client}

	code := m.Run()

	_ = testRedis.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func flushAll(t *testing.T) {
	t.Helper()
	if err := testRedis.Client.FlushAll(context.Background()).Err(); err != nil {
		t.Fatalf("flushall: %v", err)
	}
}

func TestHistoryStore_AppendReadAll_RoundTrip(t *testing.T) {
	flushAll(t)

	store := NewHistoryStore(testRedis)
	ctx := context.Background()
	recorded := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := domain.HistoryEntry{
		Post: domain.Post{
			ID:         uuid.New(),
			Type:       domain.PostOffer,
			Urgency:    domain.UrgencyMedium,
			Text:       "offering extra blankets",
			Location:   domain.Location{Lat: 28.6139, Lon: 77.2090},
			CreatedAt:  recorded.Add(-time.Minute),
			Responders: []string{"Amit"},
		},
		RecordedAt: recorded,
	}
	if err := store.Append(ctx, entry); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Post.ID != entry.Post.ID {
		t.Fatalf("post id mismatch got=%s want=%s", got[0].Post.ID, entry.Post.ID)
	}
	if got[0].Post.Text != entry.Post.Text {
		t.Fatalf("text mismatch got=%q", got[0].Post.Text)
	}
	if len(got[0].Post.Responders) != 1 || got[0].Post.Responders[0] != "Amit" {
		t.Fatalf("responders mismatch got=%v", got[0].Post.Responders)
	}
	if !got[0].RecordedAt.Equal(recorded) {
		t.Fatalf("recorded_at mismatch got=%v want=%v", got[0].RecordedAt, recorded)
	}
}

func TestHistoryStore_ReadAll_AppendOrder(t *testing.T) {
	flushAll(t)

	store := NewHistoryStore(testRedis)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		entry := domain.HistoryEntry{
			Post:       domain.Post{ID: uuid.New(), Type: domain.PostNeed, Text: fmt.Sprintf("post %d", i)},
			RecordedAt: time.Now().UTC(),
		}
		if err := store.Append(ctx, entry); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
		ids = append(ids, entry.Post.ID)
	}

	got, err := store.ReadAll(ctx)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, entry := range got {
		if entry.Post.ID != ids[i] {
			t.Fatalf("entry %d out of order: got=%s want=%s", i, entry.Post.ID, ids[i])
		}
	}
}

func TestHistoryStore_ReadAll_Empty(t *testing.T) {
	flushAll(t)

	got, err := NewHistoryStore(testRedis).ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestThemeStore_DefaultAndRoundTrip(t *testing.T) {
	flushAll(t)

	store := NewThemeStore(testRedis)
	ctx := context.Background()

	theme, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if theme != "light" {
		t.Fatalf("expected default theme light, got %q", theme)
	}

	if err := store.Set(ctx, "dark"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	theme, err = store.Get(ctx)
	if err != nil {
		t.Fatalf("Get after Set: %v", err)
	}
	if theme != "dark" {
		t.Fatalf("expected dark, got %q", theme)
	}
}
