//go:build e2e

package admin_test

import (
	"fmt"
	"net/http"
	"testing"

	reqdto "easystay/internal/handler/dto/request"
	resdto "easystay/internal/handler/dto/response"
	"easystay/internal/usecase/queries"
	"easystay/tests/common/dbtest"
	"easystay/tests/common/httptest"
	"easystay/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

type adminSuite struct {
	e2e.SharedSuite

	token string
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(adminSuite))
}

func (s *adminSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	dbtest.CreateTestAdmin(s.T(), s.DB, "admin@easystay.test", "password123")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/login",
		gin.H{"email": "admin@easystay.test", "password": "password123"}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.token = response.Token
}

func (s *adminSuite) submitMessage(name, email, body string) int64 {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/contact",
		reqdto.ContactRequest{Name: name, Email: email, Message: body}, "")

	var response map[string]any
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return int64(response["id"].(float64))
}

func (s *adminSuite) TestContactMessages() {
	s.Run("submitted messages show up in the admin search", func() {
		s.submitMessage("Juan Dela Cruz", "juan@example.com", "Do you have airport transfers?")
		s.submitMessage("Ana Reyes", "ana@example.com", "Requesting an early check-in.")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/admin/messages?search=juan", nil, s.token)

		var page queries.MessagesPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Require().Len(page.Messages, 1)
		s.Equal("Juan Dela Cruz", page.Messages[0].Name)
		s.Equal("Do you have airport transfers?", page.Messages[0].Body)
	})

	s.Run("deleting a message removes it", func() {
		id := s.submitMessage("Juan Dela Cruz", "juan@example.com", "Do you have airport transfers?")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("/api/admin/messages/%d", id), nil, s.token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.Equal(int64(0), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM messages`))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("/api/admin/messages/%d", id), nil, s.token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Message not found")
	})

	s.Run("too short messages are rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/contact",
			reqdto.ContactRequest{Name: "Juan", Email: "juan@example.com", Message: "hi"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		s.Equal(int64(0), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM messages`))
	})
}

func (s *adminSuite) TestRoomCatalog() {
	s.Run("public room list exposes the seeded inventory", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/rooms", nil, "")

		var rooms []*queries.RoomView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &rooms)
		s.Require().Len(rooms, 2)
		s.Equal("Deluxe", rooms[0].RoomTypeName)
		s.Equal(dbtest.DeluxeNightlyPrice, rooms[0].Price)
		s.Equal(dbtest.DeluxeAvailability, rooms[0].Available)
	})

	s.Run("room type list", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/roomtypes", nil, "")

		var types []*queries.RoomTypeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &types)
		s.Require().Len(types, 2)
		s.Equal("Suite", types[1].Name)
	})
}

func (s *adminSuite) TestBookingViews() {
	createBooking := func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings",
			reqdto.CreateBookingRequest{
				Guest: reqdto.GuestPayload{
					FirstName: "Maria",
					LastName:  "Santos",
					Email:     "maria@example.com",
					Mobile:    "0917-555-0101",
				},
				CheckIn:  "2026-09-01",
				CheckOut: "2026-09-04",
				Rooms:    []reqdto.RoomSelection{{ID: dbtest.DeluxeRoomID, Quantity: 1}},
			}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	}

	s.Run("booking list includes guest name and total price", func() {
		createBooking()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/bookings", nil, s.token)

		var bookings []*resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &bookings)
		s.Require().Len(bookings, 1)
		s.Equal("Maria Santos", bookings[0].GuestName)
		s.Equal(dbtest.DeluxeNightlyPrice*3, bookings[0].TotalPrice)
	})

	s.Run("recent bookings are capped at five", func() {
		for range 7 {
			createBooking()
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/recent-bookings", nil, s.token)

		var recent []*queries.RecentBooking
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &recent)
		s.Len(recent, 5)
	})

	s.Run("report summary aggregates bookings", func() {
		createBooking()

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/reports/summary", nil, s.token)

		var summary queries.ReportSummary
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &summary)
		s.Equal(int64(1), summary.TotalBookings)
		s.Require().Len(summary.FrequentlyBooked, 1)
		s.Equal("Deluxe", summary.FrequentlyBooked[0].RoomName)
	})
}
