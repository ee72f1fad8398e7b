package bootstrap

import (
	"rental-cart/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	JWTModule,
	BackendModule,
	SessionModule,
	components.UseCaseModule,
	components.HandlerModule,
)
