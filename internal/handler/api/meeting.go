package api

import (
	"errors"
	"net/http"

	reqdto "slotswap/internal/handler/dto/request"
	resdto "slotswap/internal/handler/dto/response"
	"slotswap/internal/handler/httperr"
	"slotswap/internal/handler/middleware"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/commands"
	"slotswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingUserContext = errors.New("user id missing from context")

type MeetingHandler struct {
	bookingCommands commands.BookingCommands
	meetingQueries  queries.MeetingQueries
	waitlistQueries queries.WaitlistQueries
}

func NewMeetingHandler(
	bookingCommands commands.BookingCommands,
	meetingQueries queries.MeetingQueries,
	waitlistQueries queries.WaitlistQueries,
) *MeetingHandler {
	return &MeetingHandler{
		bookingCommands: bookingCommands,
		meetingQueries:  meetingQueries,
		waitlistQueries: waitlistQueries,
	}
}

func (h *MeetingHandler) BookSlot(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot ID format", nil)
		return
	}

	var req reqdto.BookSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	bookingID, err := h.bookingCommands.BookSlot(c.Request.Context(), userID, slotID, req.Purpose)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Slot not found", nil)
		case errors.Is(err, errs.ErrSlotAlreadyBooked):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already booked", nil)
		case errors.Is(err, errs.ErrRoleNotAllowed):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only requesters can book slots", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookingCreatedResponse{BookingID: bookingID})
}

func (h *MeetingHandler) CancelMeeting(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid meeting ID format", nil)
		return
	}

	if err := h.bookingCommands.CancelBooking(c.Request.Context(), userID, bookingID); err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Meeting not found", nil)
		case errors.Is(err, errs.ErrNotBookingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Meeting belongs to another user", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	views, err := h.meetingQueries.ListByRequester(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.MeetingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromMeetingView(v)
	}
	c.JSON(http.StatusOK, response)
}

func (h *MeetingHandler) ListWaitlist(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUserContext, "Internal server error", nil)
		return
	}

	views, err := h.waitlistQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.WaitlistEntryResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromWaitlistView(v)
	}
	c.JSON(http.StatusOK, response)
}
