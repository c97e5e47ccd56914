package domain

import "time"

// HistoryEntry is the durable record of a post the local user created. It is a
// creation-time snapshot: later reactions and responders on the live post are
// deliberately not reflected here.
type HistoryEntry struct {
	Post       Post      `json:"post"`
	RecordedAt time.Time `json:"recorded_at"`
}
