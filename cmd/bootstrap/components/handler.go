package components

import (
	"context"

	"bookloop/internal/handler"
	"bookloop/internal/handler/api"
	"bookloop/internal/handler/middleware"
	"bookloop/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookHandler,
		api.NewCopyHandler,
		api.NewExchangeHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		NewRateLimiter,
		func(book *api.BookHandler, cp *api.CopyHandler, ex *api.ExchangeHandler, user *api.UserHandler) handler.Handlers {
			return handler.Handlers{Book: book, Copy: cp, Exchange: ex, User: user}
		},
	),
	fx.Invoke(handler.NewRouter),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) *middleware.RateLimiter {
	limiter := middleware.NewRateLimiter(cfg.RateLimit)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			limiter.Close()
			return nil
		},
	})
	return limiter
}
