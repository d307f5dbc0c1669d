package repository

import (
	"context"

	"slotswap/internal/domain/notification"
	"slotswap/internal/infra"
	"slotswap/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	const q = `
		INSERT INTO notifications (id, user_id, message, is_read, request_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, q, n.ID(), n.UserID(), n.Message(), n.IsRead(), n.RequestID(), n.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) DeleteByRequest(ctx context.Context, tx db.DBTX, requestID uuid.UUID) error {
	const q = `DELETE FROM notifications WHERE request_id = $1`

	// Zero rows is fine: a request may have outlived its notifications.
	if _, err := tx.Exec(ctx, q, requestID); err != nil {
		return infra.WrapRepoErr("failed to delete request notifications", err)
	}
	return nil
}

func (r *NotificationRepository) Update(ctx context.Context, tx db.DBTX, n *notification.Notification) error {
	const q = `UPDATE notifications SET is_read = $2 WHERE id = $1`

	tag, err := tx.Exec(ctx, q, n.ID(), n.IsRead())
	if err != nil {
		return infra.WrapRepoErr("failed to update notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}
