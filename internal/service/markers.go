package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/internal/feed"
)

// MarkerSync keeps the map in step with the store: a marker is shown iff the
// post passes the filter and is still active. The sync owns only the
// id-to-handle table; placing and removing is delegated to the widget, whose
// add/remove are idempotent.
type MarkerSync struct {
	widget  MapWidget
	handles map[uuid.UUID]MarkerHandle
}

func NewMarkerSync(widget MapWidget) *MarkerSync {
	return &MarkerSync{
		widget:  widget,
		handles: make(map[uuid.UUID]MarkerHandle),
	}
}

// Sync reconciles marker visibility against the desired set. label builds the
// popup text for markers that need (re-)placing.
func (m *MarkerSync) Sync(posts []domain.Post, filter domain.Filter, now time.Time, label func(domain.Post) string) {
	visible := feed.VisibleSet(posts, filter, now)
	for _, p := range posts {
		_, shown := m.handles[p.ID]
		if _, want := visible[p.ID]; want {
			if !shown {
				m.handles[p.ID] = m.widget.AddMarker(p.ID, p.Type, p.Location, label(p))
			}
			continue
		}
		if shown {
			m.widget.RemoveMarker(m.handles[p.ID])
			delete(m.handles, p.ID)
		}
	}
}

// Shown reports whether a marker is currently placed for the post.
func (m *MarkerSync) Shown(id uuid.UUID) bool {
	_, ok := m.handles[id]
	return ok
}

func (m *MarkerSync) ShownCount() int {
	return len(m.handles)
}
