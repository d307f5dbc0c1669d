package response

import (
	"time"

	"slotswap/internal/usecase/queries"

	"github.com/google/uuid"
)

type PreferenceResponse struct {
	DesiredAt time.Time `json:"desiredAt"`
}

func FromPreferenceView(v *queries.PreferenceView) *PreferenceResponse {
	return &PreferenceResponse{DesiredAt: v.DesiredAt}
}

type WaitlistEntryResponse struct {
	SlotID    uuid.UUID `json:"slotId"`
	StartTime time.Time `json:"startTime"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromWaitlistView(v *queries.WaitlistView) *WaitlistEntryResponse {
	return &WaitlistEntryResponse{
		SlotID:    v.SlotID,
		StartTime: v.StartTime,
		CreatedAt: v.CreatedAt,
	}
}
