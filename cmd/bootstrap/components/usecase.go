package components

import (
	"slotswap/internal/pkg/clock"
	"slotswap/internal/usecase/commands"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		commands.NewAuthUseCase,
		commands.NewTokenValidator,
		commands.NewSlotUseCase,
		commands.NewBookingUseCase,
		commands.NewReassignmentUseCase,
		commands.NewNotificationUseCase,
		commands.NewPreferenceUseCase,
	),
)
