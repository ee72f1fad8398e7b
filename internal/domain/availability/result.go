package availability

import (
	"errors"

	"rental-cart/internal/domain/cart"
)

var ErrInvalidQuery = errors.New("invalid availability query")

type Query struct {
	ProductID int64
	Quantity  int
	Period    cart.Period
}

func NewQuery(key cart.LineKey, quantity int) (Query, error) {
	if quantity < 1 {
		return Query{}, ErrInvalidQuery
	}
	if err := key.Period.Validate(); err != nil {
		return Query{}, errors.Join(ErrInvalidQuery, err)
	}
	return Query{ProductID: key.ProductID, Quantity: quantity, Period: key.Period}, nil
}

func (q Query) Key() cart.LineKey {
	return cart.LineKey{ProductID: q.ProductID, Period: q.Period}
}

// Result is the backend's answer for one product over one period.
type Result struct {
	Available         bool
	AvailableQuantity int
	Message           string
}

// Normalize clamps a negative remaining quantity to zero.
func (r Result) Normalize() Result {
	if r.AvailableQuantity < 0 {
		r.AvailableQuantity = 0
	}
	return r
}

// Permits applies the gating rule: inCart + increment <= availableQuantity.
func (r Result) Permits(inCart, increment int) bool {
	return r.Available && inCart+increment <= r.AvailableQuantity
}

// Covers reports whether the result still allows holding quantity units.
func (r Result) Covers(quantity int) bool {
	return r.Permits(0, quantity)
}
