package gatekeeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/domain/cart"
	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/usecase/cartstore"
	"rental-cart/internal/usecase/shared"
)

type CartStore interface {
	QuantityInCart(key cart.LineKey) int
	Line(key cart.LineKey) (cart.Line, bool)
	Revision() uint64
	UpdateQuantity(ctx context.Context, key cart.LineKey, quantity int) (bool, error)
	AddLineGuarded(ctx context.Context, in cart.AddLineInput, guard cartstore.Guard) error
	UpdateQuantityGuarded(ctx context.Context, key cart.LineKey, quantity int, guard cartstore.Guard) (bool, error)
}

// Check is the latest availability answer recorded for a line, tagged with
// the cart revision that was current when the query was sent.
type Check struct {
	Query     availability.Query
	Result    availability.Result
	Revision  uint64
	CheckedAt time.Time
}

// Gatekeeper asks the availability API before any quantity increase. The API
// is the only source of stock truth; results are kept only until a newer
// check for the same line replaces them.
type Gatekeeper struct {
	api    shared.AvailabilityAPI
	store  CartStore
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	checks map[cart.LineKey]Check
}

func New(api shared.AvailabilityAPI, store CartStore, clk clock.Clock, logger *slog.Logger) *Gatekeeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gatekeeper{
		api:    api,
		store:  store,
		clock:  clk,
		logger: logger,
		checks: make(map[cart.LineKey]Check),
	}
}

func (g *Gatekeeper) CheckAvailability(ctx context.Context, q availability.Query) (availability.Result, error) {
	revision := g.store.Revision()

	res, err := g.api.Check(ctx, q)
	if err != nil {
		return availability.Result{}, asBackendError("check availability", err)
	}
	res = res.Normalize()

	g.mu.Lock()
	g.checks[q.Key()] = Check{
		Query:     q,
		Result:    res,
		Revision:  revision,
		CheckedAt: g.clock.Now(),
	}
	g.mu.Unlock()

	g.logger.Debug("availability checked",
		"line", q.Key().String(),
		"quantity", q.Quantity,
		"available", res.Available,
		"available_quantity", res.AvailableQuantity)
	return res, nil
}

func (g *Gatekeeper) QuantityInCart(key cart.LineKey) int {
	return g.store.QuantityInCart(key)
}

// AddLine adds a line only if the backend confirms that the quantity already
// held plus the new units fit in the remaining stock.
func (g *Gatekeeper) AddLine(ctx context.Context, in cart.AddLineInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	key := in.Key()

	q, err := availability.NewQuery(key, g.store.QuantityInCart(key)+in.Quantity)
	if err != nil {
		return err
	}
	res, err := g.CheckAvailability(ctx, q)
	if err != nil {
		return err
	}

	// The guard runs under the store lock with the quantity held at commit
	// time, which may differ from what was read before the check.
	return g.store.AddLineGuarded(ctx, in, func(current int) error {
		if res.Permits(current, in.Quantity) {
			return nil
		}
		return shortage(key, in.ProductName, current+in.Quantity, res)
	})
}

// UpdateQuantity re-queries availability when the quantity grows. Decreases
// are committed directly and quantities below one are ignored.
func (g *Gatekeeper) UpdateQuantity(ctx context.Context, key cart.LineKey, quantity int) (bool, error) {
	current := g.store.QuantityInCart(key)
	if quantity < 1 || current == 0 || quantity <= current {
		return g.store.UpdateQuantity(ctx, key, quantity)
	}

	q, err := availability.NewQuery(key, quantity)
	if err != nil {
		return false, err
	}
	var name string
	if line, ok := g.store.Line(key); ok {
		name = line.ProductName
	}
	res, err := g.CheckAvailability(ctx, q)
	if err != nil {
		return false, err
	}

	return g.store.UpdateQuantityGuarded(ctx, key, quantity, func(held int) error {
		if quantity <= held || res.Permits(held, quantity-held) {
			return nil
		}
		return shortage(key, name, quantity, res)
	})
}

func (g *Gatekeeper) Latest(key cart.LineKey) (Check, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c, ok := g.checks[key]
	return c, ok
}

func (g *Gatekeeper) Forget(key cart.LineKey) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.checks, key)
}

func (g *Gatekeeper) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.checks = make(map[cart.LineKey]Check)
}

func shortage(key cart.LineKey, name string, requested int, res availability.Result) error {
	return &shared.AvailabilityError{Shortages: []shared.Shortage{{
		Key:               key,
		ProductName:       name,
		Requested:         requested,
		AvailableQuantity: res.AvailableQuantity,
		Message:           res.Message,
	}}}
}

func asBackendError(op string, err error) error {
	var netErr *shared.NetworkError
	var valErr *shared.ValidationError
	if errors.As(err, &netErr) || errors.As(err, &valErr) {
		return err
	}
	return &shared.NetworkError{Op: op, Err: err}
}
