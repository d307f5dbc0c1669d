package response

import (
	"time"

	"slotswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Message   string     `json:"message"`
	IsRead    bool       `json:"isRead"`
	RequestID *uuid.UUID `json:"requestId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromNotificationView(v *queries.NotificationView) *NotificationResponse {
	return &NotificationResponse{
		ID:        v.ID,
		Message:   v.Message,
		IsRead:    v.IsRead,
		RequestID: v.RequestID,
		CreatedAt: v.CreatedAt,
	}
}
