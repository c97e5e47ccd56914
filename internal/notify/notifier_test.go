package notify_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Ravishrk124/helpnet.in/internal/notify"
	"github.com/Ravishrk124/helpnet.in/internal/service"
)

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNotifier_LogsToast(t *testing.T) {
	t.Parallel()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := notify.New(context.Background(), logger, time.Second, 10, 10)
	id := uuid.New()
	n.Notify("Your need post has been shared!", service.SeveritySuccess, id)

	got := out.String()
	assert.Contains(t, got, "Your need post has been shared!")
	assert.Contains(t, got, "severity=success")
	assert.Contains(t, got, id.String())
}

func TestNotifier_ErrorSeverityLogsAtError(t *testing.T) {
	t.Parallel()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := notify.New(context.Background(), logger, time.Second, 10, 10)
	n.Notify("Location access is required.", service.SeverityError, uuid.Nil)

	got := out.String()
	assert.Contains(t, got, "level=ERROR")
	// Nil related post is not attached to the record.
	assert.NotContains(t, got, "post_id")
}

func TestNotifier_RateLimitDropsBurst(t *testing.T) {
	t.Parallel()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := notify.New(context.Background(), logger, time.Minute, 1, 2)
	for i := 0; i < 5; i++ {
		n.Notify("spam", service.SeverityInfo, uuid.Nil)
	}

	got := out.String()
	assert.Contains(t, got, "notification dropped by rate limit")
	shown := strings.Count(got, "🔔 spam")
	assert.Equal(t, 2, shown)
}

func TestNotifier_DismissAfterTTL(t *testing.T) {
	t.Parallel()

	out := &safeBuffer{}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	n := notify.New(context.Background(), logger, 10*time.Millisecond, 10, 10)
	n.Notify("short lived", service.SeverityInfo, uuid.Nil)

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "notification dismissed")
	}, 2*time.Second, 5*time.Millisecond)
}
