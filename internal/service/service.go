package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/feed"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// Severity classifies a notification toast.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// MarkerHandle is the opaque token the map widget hands back for a placed
// marker; the board only stores and returns it.
type MarkerHandle any

// StatusUpdate refreshes the age/status line of an already-rendered card
// without rebuilding the feed.
type StatusUpdate struct {
	ID         uuid.UUID
	AgeMinutes int
	Status     domain.PostStatus
}

// Renderer displays the derived views. Calls carry the full view each time;
// rendering is replacement, not patching.
type Renderer interface {
	RenderFeed(items []feed.Item)
	RenderHistory(entries []domain.HistoryEntry)
	UpdateStatuses(updates []StatusUpdate)
}

// MapWidget owns the map and its markers. AddMarker and RemoveMarker are
// idempotent on the widget side.
type MapWidget interface {
	Init(center domain.Location)
	AddMarker(id uuid.UUID, t domain.PostType, loc domain.Location, label string) MarkerHandle
	RemoveMarker(h MarkerHandle)
}

// LocationProvider delivers exactly one success or failure per request. The
// wait is bounded by the context; the callback re-enters the board loop.
type LocationProvider interface {
	Request(ctx context.Context, done func(domain.Location, error))
}

// NetworkWatcher reports connectivity changes. Consumed only for user
// notices; it never touches post state.
type NetworkWatcher interface {
	Subscribe(onChange func(online bool))
}

// Prompter asks the user for a responder nickname. ok is false when the
// prompt was cancelled.
type Prompter interface {
	RequestNickname(postID uuid.UUID, done func(nickname string, ok bool))
}

// Notifier shows a fire-and-forget toast. relatedPost may be uuid.Nil; when
// set the toast can offer a jump-to-post action.
type Notifier interface {
	Notify(msg string, severity Severity, relatedPost uuid.UUID)
}

// PersistentStore is the durable backing for the user's post history.
type PersistentStore interface {
	Append(ctx context.Context, entry domain.HistoryEntry) error
	ReadAll(ctx context.Context) ([]domain.HistoryEntry, error)
}

// Seeder produces demo posts around the located user.
type Seeder interface {
	Seed(center domain.Location) []domain.Post
}

// Dispatcher serializes work onto the board's single logical thread.
type Dispatcher interface {
	Post(fn func())
}
