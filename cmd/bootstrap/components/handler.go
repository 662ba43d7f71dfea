package components

import (
	"campus-reserve/internal/handler"
	"campus-reserve/internal/handler/api"
	"campus-reserve/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEventHandler,
		api.NewFestHandler,
		api.NewMerchHandler,
		middleware.NewAuthMiddleware,
		func(events *api.EventHandler, fests *api.FestHandler, merch *api.MerchHandler) handler.Handlers {
			return handler.Handlers{Events: events, Fests: fests, Merch: merch}
		},
	),
	fx.Invoke(handler.NewRouter),
)
