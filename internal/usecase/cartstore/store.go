// Package cartstore holds the single source of truth for one session's cart.
//
// Every mutation recomputes the derived totals, bumps the revision, writes the
// full state to the configured StateStorage and notifies subscribers. An empty
// cart is deleted from storage rather than written.
// Persistence failures are logged and never returned: the cart keeps working
// in memory.
package cartstore

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"rental-cart/internal/domain/cart"
	"rental-cart/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const DefaultKey = "cart_state"

// Listener receives a snapshot after each committed mutation.
type Listener func(cart.State)

// Guard is evaluated under the store lock with the quantity currently held
// for the line being changed. A non-nil error aborts the mutation.
type Guard func(current int) error

type Store struct {
	mu        sync.Mutex
	cart      *cart.Cart
	revision  uint64
	storage   shared.StateStorage
	key       string
	logger    *slog.Logger
	listeners map[int]Listener
	nextID    int
}

// New rehydrates the cart stored under key. Missing, corrupt or unreadable
// state yields an empty cart.
func New(ctx context.Context, storage shared.StateStorage, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		cart:      cart.NewCart(),
		storage:   storage,
		key:       key,
		logger:    logger.With(slog.String("cart_key", key)),
		listeners: make(map[int]Listener),
	}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Load(ctx, s.key)
	if err != nil {
		if !errors.Is(err, shared.ErrStateNotFound) {
			s.logger.Warn("failed to load cart state, starting empty", "error", err)
		}
		return
	}
	state, err := cart.UnmarshalState(data)
	if err != nil {
		s.logger.Warn("discarding corrupt cart state", "error", err)
		return
	}
	s.cart = cart.Restore(state)
}

func (s *Store) Key() string {
	return s.key
}

func (s *Store) AddLine(ctx context.Context, in cart.AddLineInput) error {
	return s.AddLineGuarded(ctx, in, nil)
}

// AddLineGuarded commits the addition only if guard accepts the quantity
// already held for the line.
func (s *Store) AddLineGuarded(ctx context.Context, in cart.AddLineInput, guard Guard) error {
	return s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		if guard != nil {
			if err := guard(c.QuantityOf(in.Key())); err != nil {
				return false, err
			}
		}
		if err := c.AddLine(in); err != nil {
			return false, err
		}
		return true, nil
	})
}

// UpdateQuantity is a no-op for quantities below one; the returned
// cart.ErrInvalidQuantity is meant to be shown as a warning.
func (s *Store) UpdateQuantity(ctx context.Context, key cart.LineKey, quantity int) (bool, error) {
	return s.UpdateQuantityGuarded(ctx, key, quantity, nil)
}

func (s *Store) UpdateQuantityGuarded(ctx context.Context, key cart.LineKey, quantity int, guard Guard) (bool, error) {
	var changed bool
	err := s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		if quantity < 1 {
			return false, cart.ErrInvalidQuantity
		}
		if guard != nil {
			if _, ok := c.Line(key); ok {
				if err := guard(c.QuantityOf(key)); err != nil {
					return false, err
				}
			}
		}
		var err error
		changed, err = c.UpdateQuantity(key, quantity)
		return changed, err
	})
	if errors.Is(err, cart.ErrInvalidQuantity) {
		s.logger.Warn("ignoring quantity update below 1", "line", key.String(), "quantity", quantity)
	}
	return changed, err
}

func (s *Store) RemoveLine(ctx context.Context, key cart.LineKey) bool {
	var removed bool
	_ = s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		removed = c.RemoveLine(key)
		return removed, nil
	})
	return removed
}

func (s *Store) UpdateLineNotes(ctx context.Context, key cart.LineKey, notes string) bool {
	var updated bool
	_ = s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		updated = c.UpdateLineNotes(key, notes)
		return updated, nil
	})
	return updated
}

func (s *Store) SetCustomerNotes(ctx context.Context, notes string) {
	_ = s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		if c.CustomerNotes() == notes {
			return false, nil
		}
		c.SetCustomerNotes(notes)
		return true, nil
	})
}

func (s *Store) CustomerNotes() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.CustomerNotes()
}

// Clear empties lines and customer notes. Clearing an empty cart leaves the
// same empty state.
func (s *Store) Clear(ctx context.Context) {
	_ = s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		c.Clear()
		return true, nil
	})
}

// ClearSubmitted settles a successful submission of submitted, taken at
// revision. An untouched cart is cleared; a cart edited since keeps whatever
// was not part of the submission. It returns the number of lines left.
func (s *Store) ClearSubmitted(ctx context.Context, submitted cart.State, revision uint64) int {
	var left int
	_ = s.mutate(ctx, func(c *cart.Cart) (bool, error) {
		if s.revision == revision {
			c.Clear()
			left = 0
			return true, nil
		}
		changed := c.RemoveSubmitted(submitted)
		left = len(c.Snapshot().Lines)
		return changed, nil
	})
	if left > 0 {
		s.logger.Info("cart edited during submission, keeping unsubmitted lines", "lines_left", left)
	}
	return left
}

func (s *Store) Snapshot() cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// SnapshotAt returns the state together with the revision it belongs to.
func (s *Store) SnapshotAt() (cart.State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot(), s.revision
}

func (s *Store) Lines() []cart.Line {
	return s.Snapshot().Lines
}

func (s *Store) TotalItems() int {
	return s.Snapshot().TotalItems
}

func (s *Store) LineCount() int {
	return s.Snapshot().LineCount
}

func (s *Store) TotalAmount() decimal.Decimal {
	return s.Snapshot().TotalAmount
}

func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.IsEmpty()
}

func (s *Store) QuantityInCart(key cart.LineKey) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.QuantityOf(key)
}

func (s *Store) Line(key cart.LineKey) (cart.Line, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Line(key)
}

// Revision increases with every committed mutation.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) mutate(ctx context.Context, fn func(c *cart.Cart) (bool, error)) error {
	s.mu.Lock()
	changed, err := fn(s.cart)
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}
	s.revision++
	snap := s.cart.Snapshot()
	s.persist(ctx, snap)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		view := snap
		view.Lines = slices.Clone(snap.Lines)
		l(view)
	}
	return nil
}

func (s *Store) persist(ctx context.Context, snap cart.State) {
	if s.storage == nil {
		return
	}
	// Nothing stored loads as an empty cart.
	if snap.IsEmpty() && snap.CustomerNotes == "" {
		if err := s.storage.Delete(ctx, s.key); err != nil {
			s.logger.Error("failed to delete cart state", "error", err)
		}
		return
	}
	data, err := cart.MarshalState(snap)
	if err != nil {
		s.logger.Error("failed to encode cart state", "error", err)
		return
	}
	if err := s.storage.Save(ctx, s.key, data); err != nil {
		s.logger.Error("failed to persist cart state", "error", err)
	}
}
