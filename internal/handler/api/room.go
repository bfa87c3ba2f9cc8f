package api

import (
	"net/http"

	"easystay/internal/handler/httperr"
	"easystay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.RoomQueries
}

func NewRoomHandler(q queries.RoomQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary List rooms
// @Description Rooms joined with their room types
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomView
// @Failure 500 {object} httperr.Response
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.q.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load rooms", nil)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// @Summary List room types
// @Description All room types
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomTypeView
// @Failure 500 {object} httperr.Response
// @Router /roomtypes [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.q.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room types", nil)
		return
	}
	c.JSON(http.StatusOK, types)
}
