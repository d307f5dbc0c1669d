package commands

import (
	"context"

	"slotswap/internal/domain/schedule"
	"slotswap/internal/pkg/clock"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	BookSlot(ctx context.Context, userID, slotID uuid.UUID, purpose string) (uuid.UUID, error)
	CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error
}

type bookingUseCase struct {
	uow      shared.UnitOfWork
	cascade  *waitlistCascade
	clockSvc clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clockSvc clock.Clock) BookingCommands {
	return &bookingUseCase{
		uow:      uow,
		cascade:  newWaitlistCascade(clockSvc),
		clockSvc: clockSvc,
	}
}

// BookSlot books a free slot directly. Occupied slots go through
// RequestSlot instead.
func (u *bookingUseCase) BookSlot(ctx context.Context, userID, slotID uuid.UUID, purpose string) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		actor, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return readErr(err, errs.ErrUserNotFound)
		}
		if !actor.IsRequester() {
			return errs.ErrRoleNotAllowed
		}

		slot, err := tx.Reads().SlotByID(ctx, slotID)
		if err != nil {
			return readErr(err, errs.ErrSlotNotFound)
		}
		if err := slot.Book(); err != nil {
			return errs.Mark(err, errs.ErrSlotAlreadyBooked)
		}
		if err := tx.Slots().SetBooked(ctx, tx.DB(), slot.ID(), true); err != nil {
			return err
		}

		booking := schedule.NewBooking(slot.ID(), userID, slot.ProviderID(), purpose)
		if err := tx.Bookings().Create(ctx, tx.DB(), booking); err != nil {
			return err
		}
		bookingID = booking.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return bookingID, nil
}

// CancelBooking removes the actor's booking and frees its slot, then
// reseats from the waitlist: the freed slot's own queue first, else an
// oldest-first scan across the whole waitlist.
func (u *bookingUseCase) CancelBooking(ctx context.Context, userID, bookingID uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		booking, err := tx.Reads().BookingByID(ctx, bookingID)
		if err != nil {
			return readErr(err, errs.ErrBookingNotFound)
		}
		if booking.RequesterID() != userID {
			return errs.ErrNotBookingOwner
		}

		if err := tx.Bookings().Delete(ctx, tx.DB(), booking.ID()); err != nil {
			return err
		}
		if err := tx.Slots().SetBooked(ctx, tx.DB(), booking.SlotID(), false); err != nil {
			return err
		}

		return u.cascade.onSlotFreed(ctx, tx, booking.SlotID())
	})
}
