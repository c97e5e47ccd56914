package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

func TestStatusAt_Boundary(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Post{CreatedAt: created}

	cases := []struct {
		name string
		now  time.Time
		want domain.PostStatus
	}{
		{"fresh", created.Add(time.Minute), domain.StatusActive},
		{"just under threshold", created.Add(domain.ExpiryThreshold - time.Second), domain.StatusActive},
		{"exactly at threshold", created.Add(domain.ExpiryThreshold), domain.StatusActive},
		{"one second past", created.Add(domain.ExpiryThreshold + time.Second), domain.StatusExpired},
		{"well past", created.Add(2 * time.Hour), domain.StatusExpired},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, domain.StatusAt(p, tc.now))
		})
	}
}

func TestAgeMinutes(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	p := domain.Post{CreatedAt: created}

	assert.Equal(t, 0, domain.AgeMinutes(p, created.Add(30*time.Second)))
	assert.Equal(t, 31, domain.AgeMinutes(p, created.Add(31*time.Minute+10*time.Second)))
}

func TestFilter_Matches(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.FilterAll.Matches(domain.PostNeed))
	assert.True(t, domain.FilterAll.Matches(domain.PostAlert))
	assert.True(t, domain.FilterOffer.Matches(domain.PostOffer))
	assert.False(t, domain.FilterOffer.Matches(domain.PostNeed))
}

func TestPost_Snapshot_Isolated(t *testing.T) {
	t.Parallel()

	p := domain.Post{
		Text:       "need water",
		Responders: []string{"Amit"},
	}
	snap := p.Snapshot()

	p.Responders = append(p.Responders, "Zoya")
	p.Reactions.Helped++

	assert.Equal(t, []string{"Amit"}, snap.Responders)
	assert.Equal(t, 0, snap.Reactions.Helped)
}

func TestReactionKind_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.ReactionHelped.Valid())
	assert.True(t, domain.ReactionSafe.Valid())
	assert.True(t, domain.ReactionUnsolved.Valid())
	assert.False(t, domain.ReactionKind("thumbs").Valid())
}
