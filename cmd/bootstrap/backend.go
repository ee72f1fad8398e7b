package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"rental-cart/internal/infra/backend"
	"rental-cart/internal/infra/events"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/usecase/shared"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
		func(c *backend.Client) shared.AvailabilityAPI { return c },
		func(c *backend.Client) shared.ReservationAPI { return c },
		NewSubmissionPublisher,
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend, logger.With(slog.String("component", "backend")))
}

func NewSubmissionPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.SubmissionPublisher, error) {
	switch cfg.Events.Driver {
	case config.EventsDriverNone, "":
		return events.NopPublisher{}, nil
	case config.EventsDriverKafka:
		pub, err := events.NewKafkaPublisher(cfg.Events, logger)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return pub.Close()
			},
		})
		return pub, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Events.Driver)
	}
}
