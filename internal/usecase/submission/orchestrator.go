package submission

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"rental-cart/internal/domain/availability"
	"rental-cart/internal/domain/cart"
	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/pkg/errs"
	"rental-cart/internal/usecase/gatekeeper"
	"rental-cart/internal/usecase/shared"

	"github.com/google/uuid"
)

const defaultValidationRounds = 3

var ErrInvalidMode = errors.New("invalid submission mode")

type Mode string

const (
	// ModeQuote asks for a devis that an admin must approve.
	ModeQuote Mode = "quote"
	// ModeDirectOrder confirms the reservation immediately.
	ModeDirectOrder Mode = "order"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeQuote, "":
		return ModeQuote, nil
	case ModeDirectOrder:
		return ModeDirectOrder, nil
	default:
		return "", ErrInvalidMode
	}
}

func (m Mode) AutoValidate() bool {
	return m == ModeDirectOrder
}

type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseSubmitting Phase = "submitting"
	PhaseSucceeded  Phase = "succeeded"
)

type Status struct {
	Phase       Phase
	LastError   error
	LastReceipt *shared.SubmissionReceipt
}

type CartStore interface {
	SnapshotAt() (cart.State, uint64)
	Revision() uint64
	ClearSubmitted(ctx context.Context, submitted cart.State, revision uint64) int
}

type AvailabilityGate interface {
	Latest(key cart.LineKey) (gatekeeper.Check, bool)
	CheckAvailability(ctx context.Context, q availability.Query) (availability.Result, error)
	Forget(key cart.LineKey)
	Reset()
}

type Orchestrator struct {
	store     CartStore
	gate      AvailabilityGate
	api       shared.ReservationAPI
	publisher shared.SubmissionPublisher
	clock     clock.Clock
	logger    *slog.Logger
	sessionID string
	rounds    int

	mu      sync.Mutex
	phase   Phase
	lastErr error
	receipt *shared.SubmissionReceipt
}

type Params struct {
	Store     CartStore
	Gate      AvailabilityGate
	API       shared.ReservationAPI
	Publisher shared.SubmissionPublisher
	Clock     clock.Clock
	Logger    *slog.Logger
	SessionID string
}

func New(p Params) *Orchestrator {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		store:     p.Store,
		gate:      p.Gate,
		api:       p.API,
		publisher: p.Publisher,
		clock:     p.Clock,
		logger:    logger,
		sessionID: p.SessionID,
		rounds:    defaultValidationRounds,
		phase:     PhaseIdle,
	}
}

// Submit validates the current cart against fresh availability and sends it
// as a devis. On success the submitted lines leave the cart, while anything
// added during the backend call stays; on failure the cart is left as is and
// the orchestrator returns to idle.
func (o *Orchestrator) Submit(ctx context.Context, mode Mode) (*shared.SubmissionReceipt, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}

	state, revision, err := o.validate(ctx)
	if err != nil {
		o.fail(err)
		return nil, err
	}

	o.setPhase(PhaseSubmitting)
	req := shared.NewDevisRequest(state, mode.AutoValidate())
	o.logger.Info("submitting devis",
		"mode", string(mode),
		"lines", len(req.Lines),
		"idempotency_key", req.IdempotencyKey.String())

	receipt, err := o.api.SubmitDevis(ctx, req)
	if err != nil {
		err = classify(err)
		o.fail(err)
		return nil, err
	}
	if receipt == nil {
		receipt = &shared.SubmissionReceipt{}
	}

	if left := o.store.ClearSubmitted(ctx, state, revision); left == 0 {
		o.gate.Reset()
	} else {
		for _, line := range state.Lines {
			o.gate.Forget(line.Key())
		}
	}
	o.publish(ctx, state, receipt, mode)

	o.mu.Lock()
	o.phase = PhaseSucceeded
	o.lastErr = nil
	o.receipt = receipt
	o.mu.Unlock()

	o.logger.Info("devis submitted", "reservation_id", receipt.ReservationID, "reference", receipt.Reference)
	return receipt, nil
}

func (o *Orchestrator) Status() Status {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Status{Phase: o.phase, LastError: o.lastErr, LastReceipt: o.receipt}
}

func (o *Orchestrator) Phase() Phase {
	return o.Status().Phase
}

func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.phase == PhaseValidating || o.phase == PhaseSubmitting {
		return errs.ErrSubmissionInProgress
	}
	o.phase = PhaseValidating
	o.lastErr = nil
	return nil
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = p
}

func (o *Orchestrator) fail(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.phase = PhaseIdle
	o.lastErr = err
	o.logger.Warn("submission aborted", "error", err)
}

// validate returns the state that passed validation and its revision.
// Rechecks suspend on the network, so the cart is re-read afterwards and
// validation restarts if it moved on.
func (o *Orchestrator) validate(ctx context.Context) (cart.State, uint64, error) {
	for range o.rounds {
		state, revision := o.store.SnapshotAt()
		if state.IsEmpty() {
			return cart.State{}, 0, errs.ErrEmptyCart
		}

		var shortages []shared.Shortage
		for _, line := range state.Lines {
			res, err := o.resultFor(ctx, line, revision)
			if err != nil {
				return cart.State{}, 0, err
			}
			if !res.Covers(line.Quantity) {
				shortages = append(shortages, shared.Shortage{
					Key:               line.Key(),
					ProductName:       line.ProductName,
					Requested:         line.Quantity,
					AvailableQuantity: res.AvailableQuantity,
					Message:           res.Message,
				})
			}
		}

		if o.store.Revision() != revision {
			continue
		}
		if len(shortages) > 0 {
			return cart.State{}, 0, &shared.AvailabilityError{Shortages: shortages}
		}
		return state, revision, nil
	}
	return cart.State{}, 0, errs.ErrCartChanged
}

// resultFor reuses a recorded check only if no mutation happened since it was
// taken; anything older is re-queried.
func (o *Orchestrator) resultFor(ctx context.Context, line cart.Line, revision uint64) (availability.Result, error) {
	if c, ok := o.gate.Latest(line.Key()); ok && c.Revision == revision {
		return c.Result, nil
	}
	q, err := availability.NewQuery(line.Key(), line.Quantity)
	if err != nil {
		return availability.Result{}, err
	}
	return o.gate.CheckAvailability(ctx, q)
}

func (o *Orchestrator) publish(ctx context.Context, state cart.State, receipt *shared.SubmissionReceipt, mode Mode) {
	if o.publisher == nil {
		return
	}
	event := shared.SubmittedEvent{
		EventID:       uuid.New(),
		SessionID:     o.sessionID,
		ReservationID: receipt.ReservationID,
		Reference:     receipt.Reference,
		AutoValidate:  mode.AutoValidate(),
		LineCount:     state.LineCount,
		TotalItems:    state.TotalItems,
		TotalAmount:   state.TotalAmount,
		SubmittedAt:   o.clock.Now(),
	}
	if err := o.publisher.PublishSubmitted(ctx, event); err != nil {
		o.logger.Error("failed to publish submission event", "error", err, "reference", receipt.Reference)
	}
}

func classify(err error) error {
	var netErr *shared.NetworkError
	var valErr *shared.ValidationError
	if errors.As(err, &netErr) || errors.As(err, &valErr) {
		return err
	}
	return &shared.NetworkError{Op: "submit devis", Err: err}
}
