package store

import (
	"github.com/nikolayk812/cartstate-demo/internal/domain"
)

// commit runs fn against the current state under the dispatch lock. When fn
// reports a change, its result is published and subscribers are notified
// before the lock is released.
func (s *Store) commit(fn func(current domain.Cart) (domain.Cart, bool)) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := *s.state.Load()
	next, changed := fn(current)
	if !changed {
		return current.Clone()
	}
	s.state.Store(&next)

	// Subscribers get their own copy so they cannot reach into committed state
	for _, sub := range s.snapshotSubscribers() {
		sub.fn(next.Clone())
	}

	return next.Clone()
}

func (s *Store) snapshotSubscribers() []subscriber {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	subs := make([]subscriber, len(s.subscribers))
	copy(subs, s.subscribers)

	return subs
}
