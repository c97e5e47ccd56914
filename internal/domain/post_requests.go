package domain

// CreatePostRequest is the draft a user submits from the post form. Location
// is attached by the board from the last known fix, not typed by the user.
type CreatePostRequest struct {
	Type     PostType `json:"type" validate:"required,oneof=need offer alert"`
	Urgency  Urgency  `json:"urgency" validate:"required,oneof=low medium high"`
	Nickname string   `json:"nickname" validate:"omitempty,max=64"`
	Text     string   `json:"text" validate:"required,min=1,max=500"`
	Location Location `json:"location" validate:"required"`
}

type Filter string

const (
	FilterAll   Filter = "all"
	FilterNeed  Filter = Filter(PostNeed)
	FilterOffer Filter = Filter(PostOffer)
	FilterAlert Filter = Filter(PostAlert)
)

// Matches reports whether a post of the given type passes the filter.
func (f Filter) Matches(t PostType) bool {
	return f == FilterAll || Filter(t) == f
}

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterNeed, FilterOffer, FilterAlert:
		return true
	}
	return false
}
