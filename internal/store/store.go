package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ravishrk124/helpnet.in/internal/domain"
	"github.com/Ravishrk124/helpnet.in/pkg/e"
	"github.com/Ravishrk124/helpnet.in/pkg/validator"
)

// PostStore is the authoritative mapping of post ids to post records. Posts
// are never deleted during a session; expiry is a derived display status.
// Insertion order is kept so projections can break timestamp ties stably.
type PostStore struct {
	mut   sync.RWMutex
	posts map[uuid.UUID]domain.Post
	order []uuid.UUID
	now   func() time.Time
}

func NewPostStore() *PostStore {
	return &PostStore{
		posts: make(map[uuid.UUID]domain.Post),
		now:   time.Now,
	}
}

// NewPostStoreWithClock is used by tests that need deterministic timestamps.
func NewPostStoreWithClock(now func() time.Time) *PostStore {
	s := NewPostStore()
	s.now = now
	return s
}

// Create validates the draft, stamps identity and creation time and inserts
// the post. The zero Location draft fails validation, so a post can never be
// created without a known location.
func (s *PostStore) Create(req domain.CreatePostRequest) (domain.Post, error) {
	if err := validator.ValidateStruct(&req); err != nil {
		return domain.Post{}, e.Wrap("store.Create", e.ErrValidation)
	}

	p := domain.Post{
		ID:         uuid.New(),
		Type:       req.Type,
		Urgency:    req.Urgency,
		Nickname:   req.Nickname,
		Text:       req.Text,
		Location:   req.Location,
		CreatedAt:  s.now().UTC(),
		Responders: []string{},
	}

	s.mut.Lock()
	s.posts[p.ID] = p
	s.order = append(s.order, p.ID)
	s.mut.Unlock()

	return p, nil
}

// Insert places an already-built post into the store, keeping its id and
// timestamps. Used by the demo seeder; uniqueness of the id still holds
// because seeded posts carry fresh uuids.
func (s *PostStore) Insert(p domain.Post) {
	s.mut.Lock()
	defer s.mut.Unlock()
	if _, ok := s.posts[p.ID]; ok {
		return
	}
	s.posts[p.ID] = p
	s.order = append(s.order, p.ID)
}

func (s *PostStore) Get(id uuid.UUID) (domain.Post, error) {
	s.mut.RLock()
	defer s.mut.RUnlock()
	p, ok := s.posts[id]
	if !ok {
		return domain.Post{}, e.ErrNotFound
	}
	return p, nil
}

// All returns the posts in insertion order. Callers receive copies; only
// Mutate writes back.
func (s *PostStore) All() []domain.Post {
	s.mut.RLock()
	defer s.mut.RUnlock()
	out := make([]domain.Post, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.posts[id])
	}
	return out
}

func (s *PostStore) Len() int {
	s.mut.RLock()
	defer s.mut.RUnlock()
	return len(s.order)
}

// Mutate applies fn to the stored post under the write lock. fn receives a
// pointer to a copy that is written back afterwards, so immutable fields
// changed by a buggy fn never leak partially.
func (s *PostStore) Mutate(id uuid.UUID, fn func(p *domain.Post)) error {
	s.mut.Lock()
	defer s.mut.Unlock()
	p, ok := s.posts[id]
	if !ok {
		return e.ErrNotFound
	}
	frozen := struct {
		id        uuid.UUID
		typ       domain.PostType
		createdAt time.Time
		location  domain.Location
	}{p.ID, p.Type, p.CreatedAt, p.Location}

	fn(&p)

	p.ID = frozen.id
	p.Type = frozen.typ
	p.CreatedAt = frozen.createdAt
	p.Location = frozen.location

	s.posts[id] = p
	return nil
}
