package components

import (
	"minutes-recharge/internal/handler"
	"minutes-recharge/internal/handler/api"
	"minutes-recharge/internal/handler/middleware"

	"go.uber.org/fx"
)

type handlerParams struct {
	fx.In

	Auth         *api.AuthHandler
	Checkout     *api.CheckoutHandler
	Transactions *api.TransactionHandler
	Usage        *api.UsageHandler
}

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCheckoutHandler,
		api.NewTransactionHandler,
		api.NewUsageHandler,
		middleware.NewAuthMiddleware,
		func(p handlerParams) handler.Handlers {
			return handler.Handlers{
				Auth:         p.Auth,
				Checkout:     p.Checkout,
				Transactions: p.Transactions,
				Usage:        p.Usage,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
