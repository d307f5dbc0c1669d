package response

import (
	"time"

	"slotswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type MeetingResponse struct {
	ID           uuid.UUID `json:"id"`
	SlotID       uuid.UUID `json:"slotId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	Purpose      string    `json:"purpose"`
}

type BookingCreatedResponse struct {
	BookingID uuid.UUID `json:"bookingId"`
}

func FromMeetingView(v *queries.MeetingView) *MeetingResponse {
	return &MeetingResponse{
		ID:           v.ID,
		SlotID:       v.SlotID,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		ProviderID:   v.ProviderID,
		ProviderName: v.ProviderName,
		Purpose:      v.Purpose,
	}
}
