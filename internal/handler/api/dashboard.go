package api

import (
	"net/http"

	resdto "easystay/internal/handler/dto/response"
	"easystay/internal/handler/httperr"
	"easystay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dash     queries.DashboardQueries
	bookings queries.BookingQueries
	guests   queries.GuestQueries
	payments queries.PaymentQueries
}

func NewDashboardHandler(
	dash queries.DashboardQueries,
	bookings queries.BookingQueries,
	guests queries.GuestQueries,
	payments queries.PaymentQueries,
) *DashboardHandler {
	return &DashboardHandler{
		dash:     dash,
		bookings: bookings,
		guests:   guests,
		payments: payments,
	}
}

// @Summary Dashboard metrics
// @Description Total, pending, cancelled, and upcoming booking counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardMetrics
// @Failure 500 {object} httperr.Response
// @Router /admin/metrics [get]
func (h *DashboardHandler) Metrics(c *gin.Context) {
	metrics, err := h.dash.Metrics(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load metrics", nil)
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// @Summary Recent bookings
// @Description Latest five bookings with guest and room type names
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RecentBooking
// @Failure 500 {object} httperr.Response
// @Router /admin/recent-bookings [get]
func (h *DashboardHandler) RecentBookings(c *gin.Context) {
	recent, err := h.bookings.Recent(c.Request.Context(), 5)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load recent bookings", nil)
		return
	}
	c.JSON(http.StatusOK, recent)
}

// @Summary List bookings
// @Description Full booking list with guest name, room types, and total price
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/bookings [get]
func (h *DashboardHandler) ListBookings(c *gin.Context) {
	items, err := h.bookings.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	resp, err := resdto.FromBookingList(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Cancelled bookings
// @Description Bookings with cancelled status
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CancelledBooking
// @Failure 500 {object} httperr.Response
// @Router /admin/bookings/cancelled [get]
func (h *DashboardHandler) CancelledBookings(c *gin.Context) {
	cancelled, err := h.bookings.Cancelled(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load cancelled bookings", nil)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// @Summary Upcoming stays
// @Description Confirmed bookings starting today or later
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.UpcomingStay
// @Failure 500 {object} httperr.Response
// @Router /admin/upcoming [get]
func (h *DashboardHandler) UpcomingStays(c *gin.Context) {
	upcoming, err := h.bookings.Upcoming(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load upcoming stays", nil)
		return
	}
	c.JSON(http.StatusOK, upcoming)
}

// @Summary Total revenue
// @Description Revenue across confirmed bookings
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]float64
// @Failure 500 {object} httperr.Response
// @Router /admin/revenue [get]
func (h *DashboardHandler) Revenue(c *gin.Context) {
	total, err := h.dash.Revenue(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load revenue", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"totalRevenue": total})
}

// @Summary List guests
// @Description All guests who made a booking
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.GuestResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/guests [get]
func (h *DashboardHandler) ListGuests(c *gin.Context) {
	views, err := h.guests.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load guests", nil)
		return
	}
	resp, err := resdto.FromGuestViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load guests", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List payments
// @Description Paginated payment list with filters and sorting
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param booking_id query int false "Filter by booking"
// @Param status query string false "Filter by status"
// @Param method query string false "Filter by method"
// @Param sort_field query string false "Sort field"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} queries.PaymentsPage
// @Failure 500 {object} httperr.Response
// @Router /admin/payments [get]
func (h *DashboardHandler) ListPayments(c *gin.Context) {
	filter := queries.PaymentListFilter{
		Page:      intQuery(c, "page", 1),
		Limit:     intQuery(c, "limit", 10),
		Status:    c.Query("status"),
		Method:    c.Query("method"),
		SortField: c.Query("sort_field"),
		SortOrder: c.Query("sort_order"),
	}
	if v := int64(intQuery(c, "booking_id", 0)); v > 0 {
		filter.BookingID = &v
	}

	page, err := h.payments.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load payments", nil)
		return
	}
	c.JSON(http.StatusOK, page)
}
