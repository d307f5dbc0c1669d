package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read-side ports, implemented by the infra read stores.

type SlotQueries interface {
	ListOpen(ctx context.Context) ([]*SlotView, error)
	ListByProvider(ctx context.Context, providerID uuid.UUID) ([]*SlotView, error)
}

type MeetingQueries interface {
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*MeetingView, error)
}

type NotificationQueries interface {
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*NotificationView, error)
}

type PreferenceQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*PreferenceView, error)
}

type WaitlistQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*WaitlistView, error)
}
