package commands

import (
	"context"
	"time"

	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type PreferenceCommands interface {
	SetPreferences(ctx context.Context, userID uuid.UUID, desiredAt []time.Time) error
}

type preferenceUseCase struct {
	uow shared.UnitOfWork
}

func NewPreferenceUseCase(uow shared.UnitOfWork) PreferenceCommands {
	return &preferenceUseCase{uow: uow}
}

// SetPreferences replaces the user's stated desired time instants.
// Preferences feed the graph builder on the next matching attempt; no
// matching runs here.
func (u *preferenceUseCase) SetPreferences(ctx context.Context, userID uuid.UUID, desiredAt []time.Time) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return readErr(err, errs.ErrUserNotFound)
		}
		if !actor.IsRequester() {
			return errs.ErrRoleNotAllowed
		}
		return tx.Preferences().ReplaceForUser(ctx, tx.DB(), userID, desiredAt)
	})
}
