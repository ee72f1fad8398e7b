package components

import (
	"rental-cart/internal/handler"
	"rental-cart/internal/handler/api"
	"rental-cart/internal/handler/middleware"
	"rental-cart/internal/pkg/config"
	"rental-cart/internal/pkg/jwt"
	"rental-cart/internal/usecase/session"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewSubmissionHandler,
		func(cart *api.CartHandler, sub *api.SubmissionHandler, reg *session.Registry) handler.Handlers {
			return handler.Handlers{Cart: cart, Submission: sub, Sessions: reg}
		},
		func(s *jwt.Service) middleware.SessionTokens { return s },
		func(tokens middleware.SessionTokens, cfg config.Config) *middleware.SessionMiddleware {
			return middleware.NewSessionMiddleware(tokens, cfg.Session)
		},
	),
	fx.Invoke(handler.NewRouter),
)
