package store

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/cartstate-demo/internal/domain"
	"go.uber.org/zap"
)

// Store owns the cart state. Dispatch is the only way to change it.
type Store struct {
	id    uuid.UUID
	log   *zap.Logger
	clock func() time.Time

	// mu serializes dispatches, state is read lock-free
	mu    sync.Mutex
	state atomic.Pointer[domain.Cart]

	subsMu      sync.Mutex
	subscribers []subscriber
	nextSubID   int
}

type subscriber struct {
	id int
	fn func(domain.Cart)
}

type Option func(*Store)

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithItems seeds the initial state.
func WithItems(items []domain.CartItem) Option {
	return func(s *Store) {
		initial := domain.Cart{Items: items}.Clone()
		s.state.Store(&initial)
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		id:    uuid.New(),
		log:   zap.NewNop(),
		clock: time.Now,
	}
	s.state.Store(&domain.Cart{})

	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With(zap.Stringer("cart_id", s.id))

	return s
}

func (s *Store) ID() uuid.UUID {
	return s.id
}

// Dispatch applies intent and returns the resulting state.
// Subscribers must not call Dispatch.
func (s *Store) Dispatch(intent domain.Intent) domain.Cart {
	return s.DispatchFunc(func(domain.Cart) domain.Intent {
		return intent
	})
}

// DispatchFunc calls fn with the current state under the dispatch lock and
// applies the intent it returns, so read-modify-write gestures cannot
// interleave. A nil intent leaves the state unchanged.
func (s *Store) DispatchFunc(fn func(current domain.Cart) domain.Intent) domain.Cart {
	var intent domain.Intent

	next := s.commit(func(current domain.Cart) (domain.Cart, bool) {
		intent = fn(current.Clone())
		if !Known(intent) {
			return current, false
		}
		return Reduce(current, intent, s.clock()), true
	})

	switch {
	case intent == nil:
		s.log.Debug("nothing to apply")
	case !Known(intent):
		s.log.Warn("unknown intent ignored", zap.String("intent", intent.Kind()))
	default:
		s.log.Debug("intent applied",
			zap.String("intent", intent.Kind()),
			zap.Int("lines", len(next.Items)),
			zap.Int("total_items", next.TotalItems()),
		)
	}

	return next
}

func (s *Store) Cart() domain.Cart {
	return s.state.Load().Clone()
}

func (s *Store) Items() []domain.CartItem {
	return s.Cart().Items
}

func (s *Store) TotalItems() int {
	return s.state.Load().TotalItems()
}

// Subscribe registers fn to receive every committed state, in dispatch order.
func (s *Store) Subscribe(fn func(domain.Cart)) (unsubscribe func()) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()

	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			defer s.subsMu.Unlock()

			for i, sub := range s.subscribers {
				if sub.id == id {
					s.subscribers = append(s.subscribers[:i:i], s.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}
