package repository

import (
	"context"

	"slotswap/internal/domain/schedule"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx db.DBTX, booking *schedule.Booking) error {
	const q = `
		INSERT INTO bookings (id, slot_id, requester_id, provider_id, purpose)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, q, booking.ID(), booking.SlotID(), booking.RequesterID(), booking.ProviderID(), booking.Purpose())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("slot already has an active booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

// UpdateSlot repoints an existing booking at a new slot; the booking id
// and purpose are preserved across the move.
func (r *BookingRepository) UpdateSlot(ctx context.Context, tx db.DBTX, bookingID, newSlotID, providerID uuid.UUID) error {
	const q = `UPDATE bookings SET slot_id = $2, provider_id = $3 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, bookingID, newSlotID, providerID)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("target slot already has an active booking", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to move booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, tx db.DBTX, bookingID uuid.UUID) error {
	const q = `DELETE FROM bookings WHERE id = $1`

	tag, err := tx.Exec(ctx, q, bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}
