package api

import (
	"net/http"

	"easystay/internal/handler/httperr"
	"easystay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Report summary
// @Description Booking totals, revenue, monthly buckets, and top room types
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.ReportSummary
// @Failure 500 {object} httperr.Response
// @Router /admin/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build report", nil)
		return
	}
	c.JSON(http.StatusOK, summary)
}
