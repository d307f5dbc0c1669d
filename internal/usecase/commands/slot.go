package commands

import (
	"context"
	"time"

	"slotswap/internal/domain/schedule"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotCommands interface {
	CreateSlot(ctx context.Context, providerID uuid.UUID, start, end time.Time) (uuid.UUID, error)
}

type slotUseCase struct {
	uow shared.UnitOfWork
}

func NewSlotUseCase(uow shared.UnitOfWork) SlotCommands {
	return &slotUseCase{uow: uow}
}

func (u *slotUseCase) CreateSlot(ctx context.Context, providerID uuid.UUID, start, end time.Time) (uuid.UUID, error) {
	var slotID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, err := tx.Reads().UserByID(ctx, providerID)
		if err != nil {
			return readErr(err, errs.ErrUserNotFound)
		}
		if !actor.IsProvider() {
			return errs.ErrRoleNotAllowed
		}

		slot, err := schedule.NewSlot(providerID, start, end)
		if err != nil {
			return err
		}
		if err := tx.Slots().Create(ctx, tx.DB(), slot); err != nil {
			return err
		}
		slotID = slot.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slotID, nil
}
