package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/feed"
	"github.com/Ravishrk124/helpnet.in/internal/geo"
	"github.com/Ravishrk124/helpnet.in/internal/store"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
)

// PostForm is what the user fills in; the board attaches the last known
// location before the draft reaches the store.
type PostForm struct {
	Type     domain.PostType
	Urgency  domain.Urgency
	Nickname string
	Text     string
}

// Board owns the mutable state of the help board: the post store, the active
// filter and the marker table. All operations run on the dispatcher, one at a
// time; every mutation re-derives the affected views before the next event is
// handled.
type Board struct {
	logger     *slog.Logger
	dispatcher Dispatcher

	store    *store.PostStore
	history  *HistoryRecorder
	markers  *MarkerSync
	renderer Renderer
	mapw     MapWidget
	notifier Notifier
	location LocationProvider
	network  NetworkWatcher
	prompter Prompter
	seeder   Seeder

	filter  domain.Filter
	userLoc *domain.Location

	ctx context.Context
	now func() time.Time
}

type BoardDeps struct {
	Store    *store.PostStore
	History  *HistoryRecorder
	Renderer Renderer
	Map      MapWidget
	Notifier Notifier
	Location LocationProvider
	Network  NetworkWatcher
	Prompter Prompter
	Seeder   Seeder
}

func NewBoard(logger *slog.Logger, dispatcher Dispatcher, deps BoardDeps) *Board {
	return &Board{
		logger:     logger,
		dispatcher: dispatcher,
		store:      deps.Store,
		history:    deps.History,
		markers:    NewMarkerSync(deps.Map),
		renderer:   deps.Renderer,
		mapw:       deps.Map,
		notifier:   deps.Notifier,
		location:   deps.Location,
		network:    deps.Network,
		prompter:   deps.Prompter,
		seeder:     deps.Seeder,
		filter:     domain.FilterAll,
		ctx:        context.Background(),
		now:        time.Now,
	}
}

// Start requests the user location once and wires the network watcher. The
// location wait is bounded by locationTimeout; on failure the board stays
// usable for browsing but refuses to create posts.
func (b *Board) Start(ctx context.Context, locationTimeout time.Duration) {
	b.ctx = ctx

	reqCtx, cancel := context.WithTimeout(ctx, locationTimeout)
	b.location.Request(reqCtx, func(loc domain.Location, err error) {
		b.dispatcher.Post(func() {
			defer cancel()
			b.onLocated(loc, err)
		})
	})

	if b.network != nil {
		b.network.Subscribe(func(online bool) {
			b.dispatcher.Post(func() { b.onNetworkChange(online) })
		})
	}

	b.dispatcher.Post(func() { b.renderHistory() })
}

func (b *Board) onLocated(loc domain.Location, err error) {
	if err != nil {
		b.logger.Error("geolocation failed", slog.Any("error", err))
		b.notifier.Notify("Location access is required for helpnet to function.", SeverityError, uuid.Nil)
		return
	}

	b.userLoc = &loc
	b.mapw.Init(loc)

	if b.seeder != nil {
		for _, p := range b.seeder.Seed(loc) {
			b.store.Insert(p)
		}
	}

	b.renderFeed()
	b.syncMarkers()

	b.notifier.Notify("Welcome to helpnet! Your community is here to help.", SeverityInfo, uuid.Nil)
	if nearest, ok := b.nearestActiveNeed(); ok {
		b.notifier.Notify("A new 'Need Help' post just appeared near you!", SeveritySuccess, nearest)
	}
}

func (b *Board) onNetworkChange(online bool) {
	if online {
		b.logger.Debug("network online")
		return
	}
	b.notifier.Notify("You are offline. Features may be limited.", SeverityInfo, uuid.Nil)
}

// CreatePost validates the form, inserts the post and brings every derived
// view (feed, markers, history) in line, then confirms with a toast carrying
// the new id so the UI can offer a jump-to-post action.
func (b *Board) CreatePost(form PostForm) {
	b.dispatcher.Post(func() { b.createPost(form) })
}

func (b *Board) createPost(form PostForm) {
	text := strings.TrimSpace(form.Text)
	if text == "" {
		b.notifier.Notify("Please enter a message for your post.", SeverityError, uuid.Nil)
		return
	}
	if b.userLoc == nil {
		b.notifier.Notify("Cannot post: your location is not available yet.", SeverityError, uuid.Nil)
		return
	}

	req := domain.CreatePostRequest{
		Type:     form.Type,
		Urgency:  form.Urgency,
		Nickname: strings.TrimSpace(form.Nickname),
		Text:     text,
		Location: *b.userLoc,
	}

	post, err := b.store.Create(req)
	if err != nil {
		if errors.Is(err, e.ErrValidation) {
			b.notifier.Notify("Your post could not be validated.", SeverityError, uuid.Nil)
			return
		}
		b.logger.Error("create post failed", slog.Any("error", err))
		return
	}

	if err := b.history.Record(b.ctx, post); err != nil {
		// The live board stays authoritative; losing a history write is not
		// fatal to the session.
		b.logger.Error("history append failed", slog.Any("error", err))
	}

	b.renderFeed()
	b.syncMarkers()
	b.renderHistory()

	msg := fmt.Sprintf("📣 Your %s post has been shared!", post.Type)
	b.notifier.Notify(msg, SeveritySuccess, post.ID)
}

// React bumps exactly one of the three counters. Unknown ids come from stale
// UI references, so they are logged and ignored rather than surfaced.
func (b *Board) React(id uuid.UUID, kind domain.ReactionKind) {
	b.dispatcher.Post(func() { b.react(id, kind) })
}

func (b *Board) react(id uuid.UUID, kind domain.ReactionKind) {
	if !kind.Valid() {
		b.logger.Warn("unknown reaction kind", slog.String("kind", string(kind)))
		return
	}

	err := b.store.Mutate(id, func(p *domain.Post) {
		switch kind {
		case domain.ReactionHelped:
			p.Reactions.Helped++
		case domain.ReactionSafe:
			p.Reactions.Safe++
		case domain.ReactionUnsolved:
			p.Reactions.Unsolved++
		}
	})
	if err != nil {
		b.logger.Debug("react on missing post", slog.String("post_id", id.String()))
		return
	}

	post, _ := b.store.Get(id)
	b.notifier.Notify(
		fmt.Sprintf("🛎️ Someone marked %q as %s!", truncate(post.Text, 30), kind),
		SeverityInfo, id,
	)
	b.renderFeed()
}

// Respond asks for a nickname asynchronously; the continuation re-enters the
// loop. Cancelling or submitting an empty name leaves the store untouched.
func (b *Board) Respond(id uuid.UUID) {
	b.dispatcher.Post(func() { b.respond(id) })
}

func (b *Board) respond(id uuid.UUID) {
	if _, err := b.store.Get(id); err != nil {
		b.logger.Debug("respond on missing post", slog.String("post_id", id.String()))
		return
	}

	b.prompter.RequestNickname(id, func(nickname string, ok bool) {
		b.dispatcher.Post(func() { b.finishRespond(id, nickname, ok) })
	})
}

func (b *Board) finishRespond(id uuid.UUID, nickname string, ok bool) {
	nickname = strings.TrimSpace(nickname)
	if !ok || nickname == "" {
		b.notifier.Notify("Response cancelled or nickname was empty.", SeverityInfo, uuid.Nil)
		return
	}

	err := b.store.Mutate(id, func(p *domain.Post) {
		p.Responders = append(p.Responders, nickname)
	})
	if err != nil {
		b.logger.Debug("respond on missing post", slog.String("post_id", id.String()))
		return
	}

	post, _ := b.store.Get(id)
	b.notifier.Notify(
		fmt.Sprintf("🚶 %s is going to help %q", nickname, truncate(post.Text, 25)),
		SeverityInfo, id,
	)
	b.renderFeed()
}

// SetFilter switches the active category and re-derives both views.
func (b *Board) SetFilter(f domain.Filter) {
	b.dispatcher.Post(func() { b.setFilter(f) })
}

func (b *Board) setFilter(f domain.Filter) {
	if !f.Valid() {
		b.logger.Warn("ignoring invalid filter", slog.String("filter", string(f)))
		return
	}
	b.filter = f
	b.renderFeed()
	b.syncMarkers()
}

func (b *Board) Filter() domain.Filter {
	return b.filter
}

// RefreshStatuses re-renders only the age/status text of displayed posts.
// Sorting and filtering are reserved for mutation and filter events so a
// tick never reshuffles the feed mid-interaction.
func (b *Board) RefreshStatuses() {
	b.dispatcher.Post(func() { b.refreshStatuses() })
}

func (b *Board) refreshStatuses() {
	now := b.now()
	var updates []StatusUpdate
	for _, p := range b.store.All() {
		if !b.filter.Matches(p.Type) {
			continue
		}
		updates = append(updates, StatusUpdate{
			ID:         p.ID,
			AgeMinutes: domain.AgeMinutes(p, now),
			Status:     domain.StatusAt(p, now),
		})
	}
	b.renderer.UpdateStatuses(updates)
}

func (b *Board) renderFeed() {
	b.renderer.RenderFeed(feed.Project(b.store.All(), b.filter, b.now()))
}

func (b *Board) renderHistory() {
	entries, err := b.history.List(b.ctx)
	if err != nil {
		b.logger.Error("history read failed", slog.Any("error", err))
		return
	}
	b.renderer.RenderHistory(entries)
}

func (b *Board) syncMarkers() {
	b.markers.Sync(b.store.All(), b.filter, b.now(), b.markerLabel)
}

// Markers exposes the sync table for wiring and tests.
func (b *Board) Markers() *MarkerSync {
	return b.markers
}

func (b *Board) markerLabel(p domain.Post) string {
	label := fmt.Sprintf("%s %s: %s", p.Type.Emoji(), titleCase(string(p.Type)), truncate(p.Text, 50))
	if b.userLoc != nil {
		km := geo.Haversine(*b.userLoc, p.Location)
		label += " — " + geo.FormatDistance(km)
	}
	return label
}

func (b *Board) nearestActiveNeed() (uuid.UUID, bool) {
	if b.userLoc == nil {
		return uuid.Nil, false
	}
	now := b.now()
	best := uuid.Nil
	bestKm := 0.0
	for _, p := range b.store.All() {
		if p.Type != domain.PostNeed || domain.StatusAt(p, now) != domain.StatusActive {
			continue
		}
		km := geo.Haversine(*b.userLoc, p.Location)
		if best == uuid.Nil || km < bestKm {
			best, bestKm = p.ID, km
		}
	}
	return best, best != uuid.Nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
