//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"slotswap/internal/handler/api"
	resdto "slotswap/internal/handler/dto/response"
	"slotswap/internal/pkg/errs"
	"slotswap/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	bookingID uuid.UUID
	bookErr   error
	cancelErr error
}

func (s *stubBookingCommands) BookSlot(context.Context, uuid.UUID, uuid.UUID, string) (uuid.UUID, error) {
	return s.bookingID, s.bookErr
}

func (s *stubBookingCommands) CancelBooking(context.Context, uuid.UUID, uuid.UUID) error {
	return s.cancelErr
}

type stubMeetingQueries struct {
	views []*queries.MeetingView
	err   error
}

func (s *stubMeetingQueries) ListByRequester(context.Context, uuid.UUID) ([]*queries.MeetingView, error) {
	return s.views, s.err
}

type stubWaitlistQueries struct {
	views []*queries.WaitlistView
	err   error
}

func (s *stubWaitlistQueries) ListByUser(context.Context, uuid.UUID) ([]*queries.WaitlistView, error) {
	return s.views, s.err
}

type MeetingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	bookings *stubBookingCommands
	meetings *stubMeetingQueries
	waitlist *stubWaitlistQueries
}

func (s *MeetingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.bookings = &stubBookingCommands{}
	s.meetings = &stubMeetingQueries{}
	s.waitlist = &stubWaitlistQueries{}

	handler := api.NewMeetingHandler(s.bookings, s.meetings, s.waitlist)
	userID := uuid.New()
	s.router.POST("/slots/:id/book", asUser(userID), handler.BookSlot)
	s.router.DELETE("/meetings/:id", asUser(userID), handler.CancelMeeting)
	s.router.GET("/meetings", asUser(userID), handler.ListMeetings)
	s.router.GET("/waitlist", asUser(userID), handler.ListWaitlist)
}

func TestMeetingHandlerSuite(t *testing.T) {
	suite.Run(t, new(MeetingHandlerTestSuite))
}

func (s *MeetingHandlerTestSuite) TestBookSlot() {
	url := "/slots/" + uuid.New().String() + "/book"
	body := map[string]any{"purpose": "standup"}

	s.Run("success: returns 201 with the booking id", func() {
		s.bookings.bookingID = uuid.New()
		s.bookings.bookErr = nil

		rec := performRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code)

		var resp resdto.BookingCreatedResponse
		decodeBody(s.T(), rec, &resp)
		s.Equal(s.bookings.bookingID, resp.BookingID)
	})

	s.Run("error: maps usecase errors with the error envelope", func() {
		cases := []struct {
			name     string
			err      error
			expected int
			message  string
		}{
			{name: "slot not found", err: errs.ErrSlotNotFound, expected: http.StatusNotFound, message: "Slot not found"},
			{name: "slot taken", err: errs.ErrSlotAlreadyBooked, expected: http.StatusConflict, message: "Slot is already booked"},
			{name: "slot taken with a cause attached", err: errs.Mark(errors.New("slot is already booked"), errs.ErrSlotAlreadyBooked), expected: http.StatusConflict, message: "Slot is already booked"},
			{name: "wrong role", err: errs.ErrRoleNotAllowed, expected: http.StatusForbidden, message: "Only requesters can book slots"},
			{name: "unexpected failure", err: errors.New("boom"), expected: http.StatusInternalServerError, message: "Internal server error"},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.bookings.bookErr = tc.err

				rec := performRequest(s.T(), s.router, http.MethodPost, url, body)
				s.Equal(tc.expected, rec.Code)

				var resp struct {
					Error struct {
						Message string `json:"message"`
					} `json:"error"`
				}
				decodeBody(s.T(), rec, &resp)
				s.Equal(tc.message, resp.Error.Message)
			})
		}
	})
}

func (s *MeetingHandlerTestSuite) TestCancelMeeting() {
	url := "/meetings/" + uuid.New().String()

	s.Run("success: returns 204", func() {
		s.bookings.cancelErr = nil

		rec := performRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 for an unknown meeting", func() {
		s.bookings.cancelErr = errs.ErrBookingNotFound

		rec := performRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("error: 403 for someone else's meeting", func() {
		s.bookings.cancelErr = errs.ErrNotBookingOwner

		rec := performRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *MeetingHandlerTestSuite) TestListMeetings() {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.meetings.views = []*queries.MeetingView{
		{ID: uuid.New(), SlotID: uuid.New(), StartTime: now, EndTime: now.Add(time.Hour), ProviderName: "pat", Purpose: "standup"},
		{ID: uuid.New(), SlotID: uuid.New(), StartTime: now.Add(time.Hour), EndTime: now.Add(2 * time.Hour), ProviderName: "pat", Purpose: "review"},
	}

	rec := performRequest(s.T(), s.router, http.MethodGet, "/meetings", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp []*resdto.MeetingResponse
	decodeBody(s.T(), rec, &resp)
	s.Len(resp, 2)
	s.Equal("standup", resp[0].Purpose)
}

func (s *MeetingHandlerTestSuite) TestListWaitlist() {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	s.waitlist.views = []*queries.WaitlistView{
		{SlotID: uuid.New(), StartTime: now, CreatedAt: now},
	}

	rec := performRequest(s.T(), s.router, http.MethodGet, "/waitlist", nil)
	s.Equal(http.StatusOK, rec.Code)

	var resp []*resdto.WaitlistEntryResponse
	decodeBody(s.T(), rec, &resp)
	s.Len(resp, 1)
}
