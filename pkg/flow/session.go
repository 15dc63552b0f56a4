package flow

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pagimos/discord-bot1/pkg/market"
)

// State is where a session sits in the shopping flow.
type State int

const (
	StateStart State = iota
	StateCategoryChosen
	StateItemsChosen
	StateCartUpdated
	StateCartReview
	StateConfirmed
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCategoryChosen:
		return "category_chosen"
	case StateItemsChosen:
		return "items_chosen"
	case StateCartUpdated:
		return "cart_updated"
	case StateCartReview:
		return "cart_review"
	case StateConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ShapeKind selects which of the shop variants a session runs: the dropdown
// market with quantity modal, the toggle-button ghost shop, or the
// per-country market with indexed picks.
type ShapeKind int

const (
	ShapeDropdown ShapeKind = iota
	ShapeToggle
	ShapeCountry
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeDropdown:
		return "dropdown"
	case ShapeToggle:
		return "toggle"
	case ShapeCountry:
		return "country"
	default:
		return "unknown"
	}
}

// Session is the per-user, per-invocation flow state. It is owned by the
// single in-flight view for one user; a second /market overwrites it.
type Session struct {
	ID     string
	UserID string
	Shape  ShapeKind
	State  State

	Category  string
	Pending   []market.Item
	Toggled   map[int]bool
	PickedIdx []int

	LastActivity time.Time
}

func newSession(userID string, shape ShapeKind, now time.Time) *Session {
	return &Session{
		ID:           uuid.NewString(),
		UserID:       userID,
		Shape:        shape,
		State:        StateStart,
		Toggled:      make(map[int]bool),
		LastActivity: now,
	}
}

func (s *Session) Touch(now time.Time) {
	s.LastActivity = now
}

// Expired reports whether the session has been idle past the ttl. The
// platform adapter checks this before dispatching any further event.
func (s *Session) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.LastActivity) > ttl
}

// Registry tracks the one live session per user. Putting a new session for
// a user silently replaces the previous one.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.UserID] = s
}

func (r *Registry) Get(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[userID]
	return s, ok
}

func (r *Registry) Remove(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, userID)
}

// Sweep drops every expired session and returns how many were evicted.
func (r *Registry) Sweep(now time.Time, ttl time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for userID, s := range r.sessions {
		if s.Expired(now, ttl) {
			delete(r.sessions, userID)
			evicted++
		}
	}
	return evicted
}
