package api

import (
	"errors"
	"net/http"

	reqdto "easystay/internal/handler/dto/request"
	resdto "easystay/internal/handler/dto/response"
	"easystay/internal/handler/httperr"
	"easystay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.PaymentCommands
}

func NewPaymentHandler(cmds commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{cmds: cmds}
}

// @Summary Submit payment
// @Description Process a payment for a booking; electronic methods confirm the booking immediately
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitPaymentRequest true "Payment request"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /payment [post]
func (h *PaymentHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.SubmitPayment(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Payment processing failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}
