package response

import (
	"slotswap/internal/usecase/commands"

	"github.com/google/uuid"
)

type RequestSlotResponse struct {
	Waitlisted    bool        `json:"waitlisted"`
	RequestID     *uuid.UUID  `json:"requestId,omitempty"`
	AffectedUsers []uuid.UUID `json:"affectedUsers,omitempty"`
}

type ApprovalResponse struct {
	Finalized bool `json:"finalized"`
	Approved  int  `json:"approved"`
	Required  int  `json:"required"`
}

func FromRequestSlotResult(r *commands.RequestSlotResult) *RequestSlotResponse {
	return &RequestSlotResponse{
		Waitlisted:    r.Waitlisted,
		RequestID:     r.RequestID,
		AffectedUsers: r.AffectedUsers,
	}
}

func FromApprovalResult(r *commands.ApprovalResult) *ApprovalResponse {
	return &ApprovalResponse{
		Finalized: r.Finalized,
		Approved:  r.Approved,
		Required:  r.Required,
	}
}
