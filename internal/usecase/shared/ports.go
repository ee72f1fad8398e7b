package shared

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/shared/ports.go -package=sharedmock

import (
	"context"

	"rental-cart/internal/domain/availability"
)

// StateStorage is the key/value capability the cart store persists through.
// Load returns ErrStateNotFound when nothing is stored under key.
type StateStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

type AvailabilityAPI interface {
	Check(ctx context.Context, q availability.Query) (availability.Result, error)
}

type ReservationAPI interface {
	SubmitDevis(ctx context.Context, req DevisRequest) (*SubmissionReceipt, error)
}

type SubmissionPublisher interface {
	PublishSubmitted(ctx context.Context, event SubmittedEvent) error
}
