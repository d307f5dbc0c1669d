package repository

import (
	"context"

	"slotswap/internal/domain/schedule"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct{}

func NewSlotRepository() *SlotRepository {
	return &SlotRepository{}
}

func (r *SlotRepository) Create(ctx context.Context, tx db.DBTX, slot *schedule.Slot) error {
	const q = `
		INSERT INTO slots (id, provider_id, start_time, end_time, is_booked)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, q, slot.ID(), slot.ProviderID(), slot.StartTime(), slot.EndTime(), slot.IsBooked())
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("slot provider does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to create slot", err)
	}
	return nil
}

func (r *SlotRepository) SetBooked(ctx context.Context, tx db.DBTX, slotID uuid.UUID, booked bool) error {
	const q = `UPDATE slots SET is_booked = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, slotID, booked)
	if err != nil {
		return infra.WrapRepoErr("failed to update slot booked flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	return nil
}
