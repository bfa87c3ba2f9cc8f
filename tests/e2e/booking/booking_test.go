//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	reqdto "easystay/internal/handler/dto/request"
	resdto "easystay/internal/handler/dto/response"
	"easystay/tests/common/dbtest"
	"easystay/tests/common/httptest"
	"easystay/tests/e2e"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

const (
	bookingsURL = "/api/bookings"
	paymentURL  = "/api/payment"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) login() string {
	dbtest.CreateTestAdmin(s.T(), s.DB, "admin@easystay.test", "password123")

	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/login",
		gin.H{"email": "admin@easystay.test", "password": "password123"}, "")

	var response resdto.LoginResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	return response.Token
}

func bookingRequest(rooms ...reqdto.RoomSelection) reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Guest: reqdto.GuestPayload{
			FirstName: "Maria",
			LastName:  "Santos",
			Email:     "maria@example.com",
			Mobile:    "0917-555-0101",
		},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-04",
		Rooms:    rooms,
	}
}

func (s *bookingSuite) createBooking(rooms ...reqdto.RoomSelection) int64 {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, bookingRequest(rooms...), "")

	var response resdto.CreateBookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
	return response.BookingID
}

func (s *bookingSuite) TestCreateBooking() {
	s.Run("booking decrements availability and stores every line item", func() {
		bookingID := s.createBooking(
			reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 2},
			reqdto.RoomSelection{ID: dbtest.SuiteRoomID, Quantity: 1},
		)

		s.Equal(dbtest.DeluxeAvailability-2, dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID))
		s.Equal(dbtest.SuiteAvailability-1, dbtest.RoomAvailability(s.T(), s.DB, dbtest.SuiteRoomID))

		s.Equal(int64(2), dbtest.CountRows(s.T(), s.DB,
			`SELECT COUNT(*) FROM booking_rooms WHERE booking_id = $1`, bookingID))

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("pending", status)
	})

	s.Run("oversell is rejected and nothing is persisted", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			bookingRequest(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 10}), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			fmt.Sprintf("Not enough rooms available for room %d", dbtest.DeluxeRoomID))

		s.Equal(dbtest.DeluxeAvailability, dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID))
		s.Equal(int64(0), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM bookings`))
		s.Equal(int64(0), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM guests`))
	})

	s.Run("one failed room rolls back the whole submission", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			bookingRequest(
				reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 2},
				reqdto.RoomSelection{ID: dbtest.SuiteRoomID, Quantity: 10},
			), "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			fmt.Sprintf("Not enough rooms available for room %d", dbtest.SuiteRoomID))

		// The deluxe reservation succeeded inside the transaction and must be undone.
		s.Equal(dbtest.DeluxeAvailability, dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID))
		s.Equal(dbtest.SuiteAvailability, dbtest.RoomAvailability(s.T(), s.DB, dbtest.SuiteRoomID))
		s.Equal(int64(0), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM bookings`))
	})

	s.Run("unknown room", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
			bookingRequest(reqdto.RoomSelection{ID: 999, Quantity: 1}), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Room not found")
	})

	s.Run("malformed dates", func() {
		req := bookingRequest(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})
		req.CheckOut = "late September"

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})
}

func (s *bookingSuite) TestConcurrentBookings() {
	s.Run("availability never goes below zero under concurrent load", func() {
		const attempts = 6 // suite has 3 rooms available

		var wg sync.WaitGroup
		codes := make([]int, attempts)

		for i := range attempts {
			wg.Add(1)
			go func(idx int) {
				defer wg.Done()
				rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, bookingsURL,
					bookingRequest(reqdto.RoomSelection{ID: dbtest.SuiteRoomID, Quantity: 1}), "")
				codes[idx] = rec.Code
			}(i)
		}
		wg.Wait()

		var created, rejected int
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusBadRequest:
				rejected++
			}
		}

		s.Equal(int(dbtest.SuiteAvailability), created)
		s.Equal(attempts-int(dbtest.SuiteAvailability), rejected)
		s.Equal(int32(0), dbtest.RoomAvailability(s.T(), s.DB, dbtest.SuiteRoomID))
		s.Equal(int64(created), dbtest.CountRows(s.T(), s.DB, `SELECT COUNT(*) FROM bookings`))
	})
}

func (s *bookingSuite) TestPayments() {
	s.Run("electronic payment confirms the booking", func() {
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, paymentURL,
			reqdto.SubmitPaymentRequest{
				PaymentMethod:  "gcash",
				BookingDetails: reqdto.BookingDetails{BookingID: bookingID, Amount: 13500},
			}, "")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("completed", response.Status)
		s.Contains(response.TransactionID, "ES-")

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("confirmed", status)
	})

	s.Run("cash payment stays pending and leaves the booking untouched", func() {
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, paymentURL,
			reqdto.SubmitPaymentRequest{
				PaymentMethod:  "cash",
				BookingDetails: reqdto.BookingDetails{BookingID: bookingID, Amount: 13500},
			}, "")

		var response resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("pending", response.Status)

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("pending", status)
	})

	s.Run("unknown booking", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, paymentURL,
			reqdto.SubmitPaymentRequest{
				PaymentMethod:  "gcash",
				BookingDetails: reqdto.BookingDetails{BookingID: 999, Amount: 13500},
			}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *bookingSuite) TestAdminBookingOperations() {
	s.Run("status update", func() {
		token := s.login()
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})

		url := fmt.Sprintf("%s/%d", bookingsURL, bookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
			reqdto.SetStatusRequest{Status: "cancelled"}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var status string
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT status FROM bookings WHERE id = $1`, bookingID).Scan(&status)
		s.Require().NoError(err)
		s.Equal("cancelled", status)
	})

	s.Run("add-room merges quantity into an existing line item", func() {
		token := s.login()
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})
		before := dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID)

		url := fmt.Sprintf("%s/%d/add-room", bookingsURL, bookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, url,
			reqdto.AddRoomRequest{RoomTypeID: 1, Quantity: 2}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		var quantity int32
		err := s.DB.QueryRow(s.T().Context(),
			`SELECT quantity FROM booking_rooms WHERE booking_id = $1 AND room_id = $2`,
			bookingID, dbtest.DeluxeRoomID).Scan(&quantity)
		s.Require().NoError(err)
		s.Equal(int32(3), quantity)

		// Desk-driven additions do not touch the availability counter.
		s.Equal(before, dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID))
	})

	s.Run("extend stay", func() {
		token := s.login()
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})

		url := fmt.Sprintf("%s/%d/extend", bookingsURL, bookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
			reqdto.ExtendStayRequest{NewEndDate: "2026-09-10"}, token)

		var response resdto.ExtendStayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-10", response.NewEndDate)

		// A date at or before the current end is rejected.
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
			reqdto.ExtendStayRequest{NewEndDate: "2026-09-10"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			"New end date must be after the current end date")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, bookingsURL+"/999/extend",
			reqdto.ExtendStayRequest{NewEndDate: "2026-09-10"}, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("availability overwrite", func() {
		token := s.login()
		available := int32(20)

		url := fmt.Sprintf("/api/admin/rooms/%d/availability", dbtest.DeluxeRoomID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
			reqdto.SetAvailabilityRequest{Available: &available}, token)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.Equal(int32(20), dbtest.RoomAvailability(s.T(), s.DB, dbtest.DeluxeRoomID))
	})

	s.Run("booking mutations require a token", func() {
		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 1})

		url := fmt.Sprintf("%s/%d", bookingsURL, bookingID)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, url,
			reqdto.SetStatusRequest{Status: "cancelled"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *bookingSuite) TestDashboard() {
	s.Run("metrics and revenue reflect the bookings", func() {
		token := s.login()

		bookingID := s.createBooking(reqdto.RoomSelection{ID: dbtest.DeluxeRoomID, Quantity: 2})
		httptest.PerformRequest(s.T(), s.Router, http.MethodPost, paymentURL,
			reqdto.SubmitPaymentRequest{
				PaymentMethod:  "gcash",
				BookingDetails: reqdto.BookingDetails{BookingID: bookingID, Amount: 27000},
			}, "")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/metrics", nil, token)
		var metrics map[string]int64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &metrics)
		s.Equal(int64(1), metrics["totalBookings"])

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/admin/revenue", nil, token)
		var revenue map[string]float64
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &revenue)

		// 2 deluxe rooms, 3 nights.
		s.Equal(dbtest.DeluxeNightlyPrice*2*3, revenue["totalRevenue"])
	})
}
