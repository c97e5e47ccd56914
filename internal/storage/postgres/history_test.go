//go:build integration

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

var (
	testPool *pgxpool.Pool
	tc       testcontainers.Container
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
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
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := NewHistoryStore(testPool).EnsureSchema(ctx); err != nil {
		fmt.Println("EnsureSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func truncateHistory(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE post_history`)
	if err != nil {
		t.Fatalf("truncate post_history: %v", err)
	}
}

func samplePost(text string, createdAt time.Time) domain.Post {
	return domain.Post{
		ID:         uuid.New(),
		Type:       domain.PostNeed,
		Urgency:    domain.UrgencyHigh,
		Nickname:   "Meena",
		Text:       text,
		Location:   domain.Location{Lat: 28.6139, Lon: 77.2090},
		CreatedAt:  createdAt,
		Responders: []string{},
		Reactions:  domain.Reactions{Helped: 1},
	}
}

func TestHistoryStore_AppendReadAll_RoundTrip(t *testing.T) {
	truncateHistory(t)

	store := NewHistoryStore(testPool)
	ctx := context.Background()
	recorded := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	entry := domain.HistoryEntry{
		Post:       samplePost("need urgent medicine", recorded.Add(-time.Minute)),
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
	if got[0].Post.Reactions != entry.Post.Reactions {
		t.Fatalf("reactions mismatch got=%+v", got[0].Post.Reactions)
	}
	if !got[0].RecordedAt.Equal(recorded) {
		t.Fatalf("recorded_at mismatch got=%v want=%v", got[0].RecordedAt, recorded)
	}
}

func TestHistoryStore_ReadAll_AppendOrder(t *testing.T) {
	truncateHistory(t)

	store := NewHistoryStore(testPool)
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		entry := domain.HistoryEntry{
			Post:       samplePost(fmt.Sprintf("post %d", i), base.Add(time.Duration(i)*time.Minute)),
			RecordedAt: base.Add(time.Duration(i) * time.Minute),
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
	truncateHistory(t)

	got, err := NewHistoryStore(testPool).ReadAll(context.Background())
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}
