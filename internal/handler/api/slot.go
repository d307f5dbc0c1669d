package api

import (
	"errors"
	"net/http"

	reqdto "slotswap/internal/handler/dto/request"
	resdto "slotswap/internal/handler/dto/response"
	"slotswap/internal/handler/middleware"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/commands"
	"slotswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

func (h *SlotHandler) CreateSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	slotID, err := h.slotCommands.CreateSlot(c.Request.Context(), userID, req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoleNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only providers can create slots",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid slot interval",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.SlotCreatedResponse{SlotID: slotID})
}

// ListSlots returns open slots by default; ?provider_id= narrows to one
// provider's slots, booked included.
func (h *SlotHandler) ListSlots(c *gin.Context) {
	var (
		views []*queries.SlotView
		err   error
	)

	if providerStr := c.Query("provider_id"); providerStr != "" {
		providerID, parseErr := uuid.Parse(providerStr)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid provider ID format",
			})
			return
		}
		views, err = h.slotQueries.ListByProvider(c.Request.Context(), providerID)
	} else {
		views, err = h.slotQueries.ListOpen(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.SlotResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromSlotView(v)
	}
	c.JSON(http.StatusOK, response)
}
