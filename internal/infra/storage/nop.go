// Package storage holds the StateStorage drivers a cart store can persist
// through. Every driver maps "nothing stored" to shared.ErrStateNotFound.
package storage

import (
	"context"

	"rental-cart/internal/usecase/shared"
)

// Nop never keeps anything; carts live only in process memory.
type Nop struct{}

func NewNop() Nop { return Nop{} }

func (Nop) Load(context.Context, string) ([]byte, error) {
	return nil, shared.ErrStateNotFound
}

func (Nop) Save(context.Context, string, []byte) error { return nil }

func (Nop) Delete(context.Context, string) error { return nil }
