package shared

import (
	"errors"
	"fmt"
	"strings"

	"rental-cart/internal/domain/cart"
	"rental-cart/internal/pkg/errs"
)

var ErrStateNotFound = errors.New("cart state not found")

// Shortage describes one line that cannot be held at its current quantity.
type Shortage struct {
	Key               cart.LineKey
	ProductName       string
	Requested         int
	AvailableQuantity int
	Message           string
}

type AvailabilityError struct {
	Shortages []Shortage
}

func (e *AvailabilityError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s: requested %d, available %d", s.Key, s.Requested, s.AvailableQuantity))
	}
	return errs.ErrAvailability.Error() + ": " + strings.Join(parts, "; ")
}

func (e *AvailabilityError) Is(target error) bool {
	return target == errs.ErrAvailability
}

// NetworkError covers transport failures, timeouts and backend outages.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %s: %v", errs.ErrNetwork, e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == errs.ErrNetwork
}

// ValidationError carries the backend's rejection message verbatim.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrBackendValidation
}
