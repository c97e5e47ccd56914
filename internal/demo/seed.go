// Package demo seeds the board with sample posts around the user so the feed
// and map have content on first launch.
package demo

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
)

type sample struct {
	text    string
	typ     domain.PostType
	urgency domain.Urgency
}

var samples = []sample{
	{"Offering extra blankets, can drop off near main square", domain.PostOffer, domain.UrgencyMedium},
	{"Need urgent medicine from pharmacy, can't leave home.", domain.PostNeed, domain.UrgencyHigh},
	{"Streetlight not working on Elm Street, very dark!", domain.PostAlert, domain.UrgencyLow},
	{"Found a lost dog near the park, black lab, friendly.", domain.PostAlert, domain.UrgencyMedium},
	{"Need water delivery for elders on 5th Ave", domain.PostNeed, domain.UrgencyMedium},
	{"Urgent: tree fallen blocking road near Oakwood bridge", domain.PostAlert, domain.UrgencyHigh},
}

var names = []string{"Amit", "Fatima", "John", "Meena", "Carlos", "Zoya"}

type Seeder struct {
	rng   *rand.Rand
	now   func() time.Time
	count int
}

func NewSeeder(seed int64) *Seeder {
	return &Seeder{
		rng:   rand.New(rand.NewSource(seed)),
		now:   time.Now,
		count: 4,
	}
}

// Seed builds posts scattered within roughly ±0.005° of the user, aged 0-25
// minutes so none start expired, with a few pre-existing reactions.
func (s *Seeder) Seed(center domain.Location) []domain.Post {
	picks := s.rng.Perm(len(samples))[:s.count]
	now := s.now().UTC()

	posts := make([]domain.Post, 0, s.count)
	for _, idx := range picks {
		smp := samples[idx]
		age := time.Duration(s.rng.Float64()*25) * time.Minute

		posts = append(posts, domain.Post{
			ID:       uuid.New(),
			Type:     smp.typ,
			Urgency:  smp.urgency,
			Nickname: names[s.rng.Intn(len(names))],
			Text:     smp.text,
			Location: domain.Location{
				Lat: center.Lat + (s.rng.Float64()-0.5)*0.01,
				Lon: center.Lon + (s.rng.Float64()-0.5)*0.01,
			},
			CreatedAt:  now.Add(-age),
			Responders: []string{},
			Reactions: domain.Reactions{
				Helped:   s.rng.Intn(4),
				Safe:     s.rng.Intn(4),
				Unsolved: s.rng.Intn(2),
			},
		})
	}
	return posts
}
