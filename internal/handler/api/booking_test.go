//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"easystay/internal/handler/api"
	reqdto "easystay/internal/handler/dto/request"
	resdto "easystay/internal/handler/dto/response"
	"easystay/internal/usecase/commands"
	"easystay/tests/common/httptest"
	commandsmock "easystay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands)

	s.router.POST("/api/bookings", s.handler.Create)
	s.router.PUT("/api/bookings/:id", s.handler.SetStatus)
	s.router.POST("/api/bookings/:id/add-room", s.handler.AddRoom)
	s.router.PUT("/api/bookings/:id/extend", s.handler.ExtendStay)
	s.router.PUT("/api/admin/rooms/:id/availability", s.handler.SetRoomAvailability)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func validCreateRequest() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Guest: reqdto.GuestPayload{
			FirstName: "Maria",
			LastName:  "Santos",
			Email:     "maria@example.com",
			Mobile:    "0917-555-0101",
		},
		CheckIn:  "2026-09-01",
		CheckOut: "2026-09-04",
		Rooms:    []reqdto.RoomSelection{{ID: 1, Quantity: 2}},
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/api/bookings"

	s.Run("success: returns 201 with the new booking id", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(&commands.CreateBookingResult{BookingID: 9}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateRequest(), "")

		var response resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(9), response.BookingID)
		s.Equal("Booking created successfully", response.Message)
	})

	s.Run("error: 400 on malformed dates without calling the usecase", func() {
		req := validCreateRequest()
		req.CheckIn = "01-09-2026"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: 400 on missing required fields", func() {
		req := validCreateRequest()
		req.Guest.Email = ""

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "insufficient availability names the room",
				commandsError:  &commands.InsufficientAvailabilityError{RoomID: 1},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Not enough rooms available for room 1",
			},
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Room not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateRequest(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestSetStatus() {
	url := "/api/bookings/9"
	reqBody := reqdto.SetStatusRequest{Status: "cancelled"}

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), int64(9), "cancelled").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on non-numeric booking id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/bookings/abc", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking id")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "invalid status value",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid status value",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to update booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetStatus(gomock.Any(), int64(9), "cancelled").
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestAddRoom() {
	url := "/api/bookings/9/add-room"
	reqBody := reqdto.AddRoomRequest{RoomTypeID: 3, Quantity: 2}

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().AddRoom(gomock.Any(), int64(9), int64(3), int32(2)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room type without rooms",
				commandsError:  commands.ErrRoomTypeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No room found for this room type",
			},
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to add room",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().AddRoom(gomock.Any(), int64(9), int64(3), int32(2)).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestExtendStay() {
	url := "/api/bookings/9/extend"
	reqBody := reqdto.ExtendStayRequest{NewEndDate: "2026-09-10"}

	s.Run("success: echoes the new end date", func() {
		s.mockCommands.EXPECT().ExtendStay(gomock.Any(), int64(9), gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")

		var response resdto.ExtendStayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("2026-09-10", response.NewEndDate)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			reqdto.ExtendStayRequest{NewEndDate: "next week"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  commands.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "non-advancing date",
				commandsError:  commands.ErrNonAdvancingDate,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "New end date must be after the current end date",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to extend booking",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExtendStay(gomock.Any(), int64(9), gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestSetRoomAvailability() {
	url := "/api/admin/rooms/7/availability"
	available := int32(12)
	reqBody := reqdto.SetAvailabilityRequest{Available: &available}

	s.Run("success: returns 200", func() {
		s.mockCommands.EXPECT().SetRoomAvailability(gomock.Any(), int64(7), int32(12)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 for unknown room", func() {
		s.mockCommands.EXPECT().SetRoomAvailability(gomock.Any(), int64(7), int32(12)).
			Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("error: 400 when the availability field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, gin.H{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
