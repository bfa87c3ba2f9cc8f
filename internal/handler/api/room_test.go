//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"easystay/internal/handler/api"
	"easystay/internal/usecase/queries"
	"easystay/tests/common/httptest"
	queriesmock "easystay/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRoomQueries
	handler     *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockQueries)

	s.router.GET("/api/rooms", s.handler.ListRooms)
	s.router.GET("/api/roomtypes", s.handler.ListRoomTypes)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) TestListRooms() {
	s.Run("success: returns rooms with type details", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).
			Return([]*queries.RoomView{
				{ID: 1, RoomTypeID: 3, RoomTypeName: "Deluxe", Price: 4500, Capacity: 2, Available: 12},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")

		var response []*queries.RoomView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Deluxe", response[0].RoomTypeName)
		s.Equal(int32(12), response[0].Available)
	})

	s.Run("error: 500 when the read store fails", func() {
		s.mockQueries.EXPECT().ListRooms(gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load rooms")
	})
}

func (s *RoomHandlerTestSuite) TestListRoomTypes() {
	s.Run("success: returns all room types", func() {
		s.mockQueries.EXPECT().ListRoomTypes(gomock.Any()).
			Return([]*queries.RoomTypeView{{ID: 3, Name: "Deluxe"}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/roomtypes", nil, "")

		var response []*queries.RoomTypeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Deluxe", response[0].Name)
	})
}
