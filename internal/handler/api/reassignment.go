package api

import (
	"errors"
	"net/http"

	reqdto "slotswap/internal/handler/dto/request"
	resdto "slotswap/internal/handler/dto/response"
	"slotswap/internal/handler/middleware"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReassignmentHandler struct {
	reassignmentCommands commands.ReassignmentCommands
}

func NewReassignmentHandler(reassignmentCommands commands.ReassignmentCommands) *ReassignmentHandler {
	return &ReassignmentHandler{reassignmentCommands: reassignmentCommands}
}

// RequestSlot files a claim on an occupied slot. The caller always
// lands on the slot's waitlist; when a displacement chain exists a
// pending reschedule request is returned alongside.
func (h *ReassignmentHandler) RequestSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid slot ID format",
		})
		return
	}

	var req reqdto.RequestSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reassignmentCommands.RequestSlot(c.Request.Context(), userID, slotID, req.Purpose)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Slot not found",
			})
		case errors.Is(err, errs.ErrSlotNotBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is free; book it directly",
			})
		case errors.Is(err, errs.ErrRequesterHoldsSlot):
			c.JSON(http.StatusConflict, gin.H{
				"error": "You already hold this slot",
			})
		case errors.Is(err, errs.ErrAlreadyWaitlisted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Already on the waitlist for this slot",
			})
		case errors.Is(err, errs.ErrRoleNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only requesters can request slots",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromRequestSlotResult(result))
}

func (h *ReassignmentHandler) Approve(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	result, err := h.reassignmentCommands.Approve(c.Request.Context(), requestID, userID)
	if err != nil {
		h.writeApprovalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromApprovalResult(result))
}

func (h *ReassignmentHandler) Reject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request ID format",
		})
		return
	}

	if err := h.reassignmentCommands.Reject(c.Request.Context(), requestID, userID); err != nil {
		h.writeApprovalError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReassignmentHandler) writeApprovalError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Reschedule request not found",
		})
	case errors.Is(err, errs.ErrRequestNotPending):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Reschedule request is no longer pending",
		})
	case errors.Is(err, errs.ErrNotAffectedUser):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "You are not an affected party of this request",
		})
	case errors.Is(err, errs.ErrStaleChain):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Schedule changed since the request was filed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
