package components

import (
	"rental-cart/internal/pkg/clock"
	"rental-cart/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewCartUseCase,
	),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)
