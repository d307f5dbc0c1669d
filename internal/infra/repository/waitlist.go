package repository

import (
	"context"

	"slotswap/internal/domain/schedule"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type WaitlistRepository struct{}

func NewWaitlistRepository() *WaitlistRepository {
	return &WaitlistRepository{}
}

func (r *WaitlistRepository) Insert(ctx context.Context, tx db.DBTX, entry *schedule.WaitlistEntry) error {
	const q = `
		INSERT INTO waitlist_entries (id, slot_id, user_id, purpose, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, q, entry.ID(), entry.SlotID(), entry.UserID(), entry.Purpose(), entry.CreatedAt())
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("user already waitlisted for slot", err, infra.KindDuplicateKey)
		}
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("waitlist slot or user does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to insert waitlist entry", err)
	}
	return nil
}

func (r *WaitlistRepository) Delete(ctx context.Context, tx db.DBTX, entryID uuid.UUID) error {
	const q = `DELETE FROM waitlist_entries WHERE id = $1`

	tag, err := tx.Exec(ctx, q, entryID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete waitlist entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("waitlist entry not found", nil, infra.KindNotFound)
	}
	return nil
}
