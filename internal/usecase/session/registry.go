package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"rental-cart/internal/domain/cart"
	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/usecase/cartstore"
	"rental-cart/internal/usecase/gatekeeper"
	"rental-cart/internal/usecase/shared"
	"rental-cart/internal/usecase/submission"
)

// Session bundles the cart components of one browsing session.
type Session struct {
	ID           string
	Store        *cartstore.Store
	Gatekeeper   *gatekeeper.Gatekeeper
	Orchestrator *submission.Orchestrator

	lastSeen time.Time
}

type Deps struct {
	Storage      shared.StateStorage
	Availability shared.AvailabilityAPI
	Reservations shared.ReservationAPI
	Publisher    shared.SubmissionPublisher
	Clock        clock.Clock
	Logger       *slog.Logger
	// StorageKey maps a session ID to its persisted key.
	StorageKey func(sessionID string) string
	IdleTTL    time.Duration
}

// Registry keeps live sessions in memory. Evicted sessions are rebuilt from
// storage on their next request; only pending availability checks are lost.
type Registry struct {
	deps Deps

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry(deps Deps) *Registry {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.StorageKey == nil {
		deps.StorageKey = func(id string) string { return cartstore.DefaultKey + ":" + id }
	}
	return &Registry{
		deps:     deps,
		sessions: make(map[string]*Session),
	}
}

func (r *Registry) Get(ctx context.Context, id string) *Session {
	now := r.deps.Clock.Now()

	r.mu.Lock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = now
		r.mu.Unlock()
		return s
	}
	r.mu.Unlock()

	built := r.build(ctx, id)

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.lastSeen = now
		return s
	}
	built.lastSeen = now
	r.sessions[id] = built
	return built
}

func (r *Registry) build(ctx context.Context, id string) *Session {
	logger := r.deps.Logger.With(slog.String("session_id", id))

	store := cartstore.New(ctx, r.deps.Storage, r.deps.StorageKey(id), logger)
	store.Subscribe(func(s cart.State) {
		logger.Debug("cart changed",
			"line_count", s.LineCount,
			"total_items", s.TotalItems,
			"total_amount", s.TotalAmount.String())
	})

	gate := gatekeeper.New(r.deps.Availability, store, r.deps.Clock, logger)
	orch := submission.New(submission.Params{
		Store:     store,
		Gate:      gate,
		API:       r.deps.Reservations,
		Publisher: r.deps.Publisher,
		Clock:     r.deps.Clock,
		Logger:    logger,
		SessionID: id,
	})

	return &Session{ID: id, Store: store, Gatekeeper: gate, Orchestrator: orch}
}

// Sweep drops sessions idle for longer than the configured TTL, except those
// with a submission in flight.
func (r *Registry) Sweep(now time.Time) int {
	if r.deps.IdleTTL <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) < r.deps.IdleTTL {
			continue
		}
		switch s.Orchestrator.Phase() {
		case submission.PhaseValidating, submission.PhaseSubmitting:
			continue
		}
		delete(r.sessions, id)
		evicted++
	}
	return evicted
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// RunSweeper sweeps every interval until ctx is done.
func (r *Registry) RunSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(r.deps.Clock.Now()); n > 0 {
				r.deps.Logger.Info("evicted idle cart sessions", "count", n)
			}
		}
	}
}
