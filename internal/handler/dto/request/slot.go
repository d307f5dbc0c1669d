package request

import "time"

type CreateSlotRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type BookSlotRequest struct {
	Purpose string `json:"purpose" binding:"required"`
}

// RequestSlotRequest targets an occupied slot; the purpose carries over
// to the booking created if the requester is eventually seated.
type RequestSlotRequest struct {
	Purpose string `json:"purpose" binding:"required"`
}
