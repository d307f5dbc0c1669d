package components

import (
	"slotswap/internal/handler"
	"slotswap/internal/handler/api"
	"slotswap/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSlotHandler,
		api.NewMeetingHandler,
		api.NewReassignmentHandler,
		api.NewNotificationHandler,
		api.NewPreferenceHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
