// Package feed derives the list and map views from the post store. The two
// views intentionally disagree about expired posts: the feed keeps them with
// an expired badge, the map drops their markers.
package feed

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

// Item is one feed row: the post plus its status at projection time.
type Item struct {
	Post   domain.Post
	Status domain.PostStatus
}

// Project selects the posts passing the filter and orders them newest first.
// Expired posts stay in the result. The sort is stable over the input order,
// so posts created at the same instant keep insertion order. Given the same
// inputs the output is always identical; the feed is rebuilt in full on every
// mutation, not patched.
func Project(posts []domain.Post, filter domain.Filter, now time.Time) []Item {
	items := make([]Item, 0, len(posts))
	for _, p := range posts {
		if !filter.Matches(p.Type) {
			continue
		}
		items = append(items, Item{Post: p, Status: domain.StatusAt(p, now)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Post.CreatedAt.After(items[j].Post.CreatedAt)
	})
	return items
}

// VisibleSet computes which posts should have a map marker: type passes the
// filter and the post is still active.
func VisibleSet(posts []domain.Post, filter domain.Filter, now time.Time) map[uuid.UUID]struct{} {
	visible := make(map[uuid.UUID]struct{})
	for _, p := range posts {
		if !filter.Matches(p.Type) {
			continue
		}
		if domain.StatusAt(p, now) != domain.StatusActive {
			continue
		}
		visible[p.ID] = struct{}{}
	}
	return visible
}
