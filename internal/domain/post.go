package domain

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostNeed  PostType = "need"
	PostOffer PostType = "offer"
	PostAlert PostType = "alert"
)

func (t PostType) Valid() bool {
	switch t {
	case PostNeed, PostOffer, PostAlert:
		return true
	}
	return false
}

// Emoji returns the marker/feed glyph for the post category.
func (t PostType) Emoji() string {
	switch t {
	case PostNeed:
		return "🆘"
	case PostOffer:
		return "✅"
	case PostAlert:
		return "⚠️"
	default:
		return "❓"
	}
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

type ReactionKind string

const (
	ReactionHelped   ReactionKind = "helped"
	ReactionSafe     ReactionKind = "safe"
	ReactionUnsolved ReactionKind = "unsolved"
)

func (k ReactionKind) Valid() bool {
	switch k {
	case ReactionHelped, ReactionSafe, ReactionUnsolved:
		return true
	}
	return false
}

// Reactions holds the three fixed feedback counters. The set of counters is
// closed: no key space exists to grow.
type Reactions struct {
	Helped   int `json:"helped"`
	Safe     int `json:"safe"`
	Unsolved int `json:"unsolved"`
}

type Location struct {
	Lat float64 `json:"lat" validate:"lat"`
	Lon float64 `json:"lon" validate:"lon"`
}

// Post is the central entity of the board. ID, Type, Location and CreatedAt are
// immutable after creation; Responders is append-only.
type Post struct {
	ID         uuid.UUID `json:"id"`
	Type       PostType  `json:"type"`
	Urgency    Urgency   `json:"urgency"`
	Nickname   string    `json:"nickname"` // empty means anonymous
	Text       string    `json:"text"`
	Location   Location  `json:"location"`
	CreatedAt  time.Time `json:"created_at"`
	Responders []string  `json:"responders"`
	Reactions  Reactions `json:"reactions"`
}

// Snapshot returns a deep copy so a recorded entry cannot observe later
// mutations of the live post.
func (p Post) Snapshot() Post {
	cp := p
	cp.Responders = append([]string(nil), p.Responders...)
	return cp
}

// Author returns the display name, falling back for anonymous posts.
func (p Post) Author() string {
	if p.Nickname == "" {
		return "Anonymous"
	}
	return p.Nickname
}
