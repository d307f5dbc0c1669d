package commands

import (
	"context"

	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type notificationUseCase struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCase{uow: uow}
}

// MarkRead is scoped to the owner: a notification id belonging to
// someone else reads as not found.
func (u *notificationUseCase) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Reads().NotificationByID(ctx, notificationID)
		if err != nil {
			return readErr(err, errs.ErrNotificationNotFound)
		}
		if n.UserID() != userID {
			return errs.ErrNotificationNotFound
		}
		n.MarkRead()
		return tx.Notifications().Update(ctx, tx.DB(), n)
	})
}
