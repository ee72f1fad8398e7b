package bootstrap

import (
	"context"
	"log/slog"

	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/usecase/session"
	"rental-cart/internal/usecase/shared"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionRegistry,
	),
)

type SessionParams struct {
	fx.In

	Config       config.Config
	Storage      shared.StateStorage
	Availability shared.AvailabilityAPI
	Reservations shared.ReservationAPI
	Publisher    shared.SubmissionPublisher
	Clock        clock.Clock
	Logger       *slog.Logger
}

// NewSessionRegistry also runs the idle-session sweeper for the app's lifetime.
func NewSessionRegistry(lc fx.Lifecycle, p SessionParams) *session.Registry {
	reg := session.NewRegistry(session.Deps{
		Storage:      p.Storage,
		Availability: p.Availability,
		Reservations: p.Reservations,
		Publisher:    p.Publisher,
		Clock:        p.Clock,
		Logger:       p.Logger,
		StorageKey:   p.Config.Storage.StorageKey,
		IdleTTL:      p.Config.Session.IdleTTL,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				reg.RunSweeper(ctx, p.Config.Session.SweepEvery)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
	return reg
}
