package repository

import (
	"context"

	"slotswap/internal/domain/reassignment"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type RescheduleRepository struct{}

func NewRescheduleRepository() *RescheduleRepository {
	return &RescheduleRepository{}
}

func (r *RescheduleRepository) Create(ctx context.Context, tx db.DBTX, req *reassignment.Request) error {
	const insertReq = `
		INSERT INTO reschedule_requests (id, requester_id, requested_slot_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, insertReq, req.ID(), req.RequesterID(), req.RequestedSlot(), req.Status().String(), req.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create reschedule request", err)
	}

	const insertMove = `
		INSERT INTO reschedule_moves (request_id, position, user_id, from_slot_id, to_slot_id, provider_id, approved)
		VALUES ($1, $2, $3, $4, $5, $6, false)`

	for i, m := range req.Moves() {
		if _, err := tx.Exec(ctx, insertMove, req.ID(), i, m.UserID, m.FromSlot, m.ToSlot, m.ProviderID); err != nil {
			return infra.WrapRepoErr("failed to create reschedule move", err)
		}
	}
	return nil
}

func (r *RescheduleRepository) SetApproved(ctx context.Context, tx db.DBTX, requestID, userID uuid.UUID) error {
	const q = `
		UPDATE reschedule_moves SET approved = true
		WHERE request_id = $1 AND user_id = $2`

	tag, err := tx.Exec(ctx, q, requestID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to record approval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no move found for approver", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the request row; move rows go with it via cascade.
func (r *RescheduleRepository) Delete(ctx context.Context, tx db.DBTX, requestID uuid.UUID) error {
	const q = `DELETE FROM reschedule_requests WHERE id = $1`

	tag, err := tx.Exec(ctx, q, requestID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reschedule request", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reschedule request not found", nil, infra.KindNotFound)
	}
	return nil
}
