package cart

import (
	"strconv"
	"strings"
	"sync"

	"github.com/pagimos/discord-bot1/pkg/market"
)

// Quantity bounds for a single modal input. Anything outside is clamped,
// anything unparsable falls back to MinQuantity.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Store holds every user's cart for the lifetime of the process. A cart is
// an ordered list of item lines; buying the same item twice means two lines.
// Mutations for one user are serialized on that user's lock, different users
// never contend.
type Store struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	carts map[string][]market.Item
}

func NewStore() *Store {
	return &Store{
		locks: make(map[string]*sync.Mutex),
		carts: make(map[string][]market.Item),
	}
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Get returns a copy of the user's cart lines, empty if the user has none.
func (s *Store) Get(userID string) []market.Item {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	lines := s.carts[userID]
	out := make([]market.Item, len(lines))
	copy(out, lines)
	return out
}

// Append adds a single line to the user's cart.
func (s *Store) Append(userID string, item market.Item) {
	s.AppendMany(userID, item, 1)
}

// AppendMany adds quantity lines of the item. The quantity is clamped to
// [MinQuantity, MaxQuantity] before insertion.
func (s *Store) AppendMany(userID string, item market.Item, quantity int) {
	quantity = clamp(quantity)

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	for i := 0; i < quantity; i++ {
		s.carts[userID] = append(s.carts[userID], item)
	}
}

// AppendQuantityText resolves a raw modal input into a quantity and appends.
// Non-numeric text is not fatal: the quantity defaults to MinQuantity and
// defaulted reports that so the caller can tell the user.
func (s *Store) AppendQuantityText(userID string, item market.Item, text string) (quantity int, defaulted bool) {
	quantity, defaulted = ParseQuantity(text)
	s.AppendMany(userID, item, quantity)
	return quantity, defaulted
}

// ParseQuantity applies the clamp-and-default policy without touching a cart.
func ParseQuantity(text string) (quantity int, defaulted bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return MinQuantity, true
	}
	return clamp(n), false
}

// Clear replaces the user's cart with an empty one.
func (s *Store) Clear(userID string) {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()
	s.carts[userID] = nil
}

func (s *Store) IsEmpty(userID string) bool {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()
	return len(s.carts[userID]) == 0
}

func clamp(n int) int {
	if n < MinQuantity {
		return MinQuantity
	}
	if n > MaxQuantity {
		return MaxQuantity
	}
	return n
}
