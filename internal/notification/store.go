package notification

import (
	"sync"

	"github.com/Phecobaba/Skybooker-sub001/internal/domain"
)

// Store owns the session's notification snapshot. All mutations go through
// the pure transforms in this package; the store only swaps snapshots under
// its lock, so readers always see a consistent slice.
type Store struct {
	mu    sync.RWMutex
	items []domain.Notification
}

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns a copy safe to hand to callers.
func (s *Store) Snapshot() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// Refresh merges notifications derived from the given bookings into the
// current snapshot. Safe to call repeatedly with the same input.
func (s *Store) Refresh(bookings []domain.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = DeriveAndMerge(s.items, bookings)
}

// Push adds an ad hoc notification and re-sorts the snapshot.
func (s *Store) Push(n domain.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = DeriveAndMerge(append(s.items, n), nil)
}

func (s *Store) MarkAsRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = MarkAsRead(s.items, id)
}

func (s *Store) MarkAllAsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = MarkAllAsRead(s.items)
}

func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return UnreadCount(s.items)
}
