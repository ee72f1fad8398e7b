//go:build acceptance

package acceptance

import (
	"context"
	"fmt"
	"time"

	"rental-cart/cmd/bootstrap"
	"rental-cart/cmd/bootstrap/components"
	"rental-cart/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

// buildApp wires the real module graph against the given backend URL.
func buildApp(backendURL string) (*gin.Engine, *fx.App, error) {
	gin.SetMode(gin.TestMode)
	var router *gin.Engine

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			cfg := config.NewTestConfig()
			cfg.Backend.BaseURL = backendURL
			return cfg
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		bootstrap.JWTModule,
		bootstrap.BackendModule,
		bootstrap.SessionModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to start app: %w", err)
	}
	return router, app, nil
}
