package queries

import (
	"time"

	"github.com/google/uuid"
)

type SlotView struct {
	ID           uuid.UUID
	ProviderID   uuid.UUID
	ProviderName string
	StartTime    time.Time
	EndTime      time.Time
	IsBooked     bool
}

type MeetingView struct {
	ID           uuid.UUID
	SlotID       uuid.UUID
	StartTime    time.Time
	EndTime      time.Time
	ProviderID   uuid.UUID
	ProviderName string
	Purpose      string
}

type NotificationView struct {
	ID        uuid.UUID
	Message   string
	IsRead    bool
	RequestID *uuid.UUID
	CreatedAt time.Time
}

type PreferenceView struct {
	DesiredAt time.Time
}

type WaitlistView struct {
	SlotID    uuid.UUID
	StartTime time.Time
	CreatedAt time.Time
}
