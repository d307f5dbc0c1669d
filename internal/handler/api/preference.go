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
)

type PreferenceHandler struct {
	preferenceCommands commands.PreferenceCommands
	preferenceQueries  queries.PreferenceQueries
}

func NewPreferenceHandler(
	preferenceCommands commands.PreferenceCommands,
	preferenceQueries queries.PreferenceQueries,
) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceCommands: preferenceCommands,
		preferenceQueries:  preferenceQueries,
	}
}

func (h *PreferenceHandler) PutPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.PutPreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.preferenceCommands.SetPreferences(c.Request.Context(), userID, req.DesiredAt); err != nil {
		switch {
		case errors.Is(err, errs.ErrRoleNotAllowed):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Only requesters can set preferences",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PreferenceHandler) ListPreferences(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.preferenceQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.PreferenceResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromPreferenceView(v)
	}
	c.JSON(http.StatusOK, response)
}
