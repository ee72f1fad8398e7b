package usecase

//go:generate mockgen -source=cart.go -destination=../../tests/mock/usecase/cart.go -package=usecasemock

import (
	"context"
	"errors"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/domain/cart"
	"rental-cart/internal/usecase/session"
	"rental-cart/internal/usecase/shared"
	"rental-cart/internal/usecase/submission"
)

var ErrLineNotFound = errors.New("cart line not found")

// AvailabilityView is one availability answer together with what the cart
// already holds for the same line.
type AvailabilityView struct {
	Result         availability.Result
	QuantityInCart int
}

// CartUseCase is the per-session cart surface served over HTTP.
type CartUseCase interface {
	GetCart(ctx context.Context, sessionID string) cart.State
	AddLine(ctx context.Context, sessionID string, in cart.AddLineInput) (cart.State, error)
	UpdateQuantity(ctx context.Context, sessionID string, key cart.LineKey, quantity int) (cart.State, error)
	UpdateLineNotes(ctx context.Context, sessionID string, key cart.LineKey, notes string) (cart.State, error)
	RemoveLine(ctx context.Context, sessionID string, key cart.LineKey) (cart.State, error)
	SetCustomerNotes(ctx context.Context, sessionID string, notes string) cart.State
	Clear(ctx context.Context, sessionID string) cart.State
	CheckAvailability(ctx context.Context, sessionID string, key cart.LineKey, quantity int) (*AvailabilityView, error)
	Submit(ctx context.Context, sessionID string, mode submission.Mode) (*shared.SubmissionReceipt, error)
	SubmissionStatus(ctx context.Context, sessionID string) submission.Status
}

type cartUseCaseImpl struct {
	sessions *session.Registry
}

func NewCartUseCase(sessions *session.Registry) CartUseCase {
	return &cartUseCaseImpl{sessions: sessions}
}

func (uc *cartUseCaseImpl) GetCart(ctx context.Context, sessionID string) cart.State {
	return uc.sessions.Get(ctx, sessionID).Store.Snapshot()
}

func (uc *cartUseCaseImpl) AddLine(ctx context.Context, sessionID string, in cart.AddLineInput) (cart.State, error) {
	s := uc.sessions.Get(ctx, sessionID)
	if err := s.Gatekeeper.AddLine(ctx, in); err != nil {
		return s.Store.Snapshot(), err
	}
	return s.Store.Snapshot(), nil
}

func (uc *cartUseCaseImpl) UpdateQuantity(ctx context.Context, sessionID string, key cart.LineKey, quantity int) (cart.State, error) {
	s := uc.sessions.Get(ctx, sessionID)
	changed, err := s.Gatekeeper.UpdateQuantity(ctx, key, quantity)
	if err != nil {
		return s.Store.Snapshot(), err
	}
	if !changed {
		if _, ok := s.Store.Line(key); !ok {
			return s.Store.Snapshot(), ErrLineNotFound
		}
	}
	return s.Store.Snapshot(), nil
}

func (uc *cartUseCaseImpl) UpdateLineNotes(ctx context.Context, sessionID string, key cart.LineKey, notes string) (cart.State, error) {
	s := uc.sessions.Get(ctx, sessionID)
	if !s.Store.UpdateLineNotes(ctx, key, notes) {
		return s.Store.Snapshot(), ErrLineNotFound
	}
	return s.Store.Snapshot(), nil
}

func (uc *cartUseCaseImpl) RemoveLine(ctx context.Context, sessionID string, key cart.LineKey) (cart.State, error) {
	s := uc.sessions.Get(ctx, sessionID)
	if !s.Store.RemoveLine(ctx, key) {
		return s.Store.Snapshot(), ErrLineNotFound
	}
	s.Gatekeeper.Forget(key)
	return s.Store.Snapshot(), nil
}

func (uc *cartUseCaseImpl) SetCustomerNotes(ctx context.Context, sessionID string, notes string) cart.State {
	s := uc.sessions.Get(ctx, sessionID)
	s.Store.SetCustomerNotes(ctx, notes)
	return s.Store.Snapshot()
}

func (uc *cartUseCaseImpl) Clear(ctx context.Context, sessionID string) cart.State {
	s := uc.sessions.Get(ctx, sessionID)
	s.Store.Clear(ctx)
	s.Gatekeeper.Reset()
	return s.Store.Snapshot()
}

func (uc *cartUseCaseImpl) CheckAvailability(ctx context.Context, sessionID string, key cart.LineKey, quantity int) (*AvailabilityView, error) {
	q, err := availability.NewQuery(key, quantity)
	if err != nil {
		return nil, err
	}

	s := uc.sessions.Get(ctx, sessionID)
	res, err := s.Gatekeeper.CheckAvailability(ctx, q)
	if err != nil {
		return nil, err
	}
	return &AvailabilityView{Result: res, QuantityInCart: s.Gatekeeper.QuantityInCart(key)}, nil
}

func (uc *cartUseCaseImpl) Submit(ctx context.Context, sessionID string, mode submission.Mode) (*shared.SubmissionReceipt, error) {
	return uc.sessions.Get(ctx, sessionID).Orchestrator.Submit(ctx, mode)
}

func (uc *cartUseCaseImpl) SubmissionStatus(ctx context.Context, sessionID string) submission.Status {
	return uc.sessions.Get(ctx, sessionID).Orchestrator.Status()
}
