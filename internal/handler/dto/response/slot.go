package response

import (
	"time"

	"slotswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"providerId"`
	ProviderName string    `json:"providerName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsBooked     bool      `json:"isBooked"`
}

type SlotCreatedResponse struct {
	SlotID uuid.UUID `json:"slotId"`
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:           v.ID,
		ProviderID:   v.ProviderID,
		ProviderName: v.ProviderName,
		StartTime:    v.StartTime,
		EndTime:      v.EndTime,
		IsBooked:     v.IsBooked,
	}
}
