package domain

import "time"

type PostStatus string

const (
	StatusActive  PostStatus = "active"
	StatusExpired PostStatus = "expired"
)

// ExpiryThreshold is the canonical freshness window. Every consumer (feed,
// markers, history, status tick) derives expiry through StatusAt; nothing
// caches the result on the post.
const ExpiryThreshold = 30 * time.Minute

// StatusAt reports whether the post is still fresh at the given instant.
// The boundary is strict: a post exactly ExpiryThreshold old is still active.
func StatusAt(p Post, now time.Time) PostStatus {
	if now.Sub(p.CreatedAt) > ExpiryThreshold {
		return StatusExpired
	}
	return StatusActive
}

// AgeMinutes is the whole number of minutes since creation, as shown on feed
// cards and history entries.
func AgeMinutes(p Post, now time.Time) int {
	return int(now.Sub(p.CreatedAt) / time.Minute)
}
