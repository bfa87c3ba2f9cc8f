package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "easystay/internal/handler/dto/request"
	"easystay/internal/handler/httperr"
	"easystay/internal/usecase/commands"
	"easystay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary Submit contact message
// @Description Store a contact-form message for the admin dashboard
// @Tags messages
// @Accept json
// @Produce json
// @Param request body reqdto.ContactRequest true "Contact request"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /contact [post]
func (h *MessageHandler) Submit(c *gin.Context) {
	var req reqdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.SubmitMessage(c.Request.Context(), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to submit message", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully",
		"id":      id,
	})
}

// @Summary Search messages
// @Description Paginated contact message search by name or email
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 10)"
// @Param search query string false "Name or email filter"
// @Success 200 {object} queries.MessagesPage
// @Failure 500 {object} httperr.Response
// @Router /admin/messages [get]
func (h *MessageHandler) Search(c *gin.Context) {
	filter := queries.MessageSearchFilter{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
		Search: c.Query("search"),
	}

	page, err := h.q.Search(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load messages", nil)
		return
	}

	c.JSON(http.StatusOK, page)
}

// @Summary Delete message
// @Description Delete a contact message
// @Tags messages
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid message id", nil)
		return
	}

	if err := h.cmds.DeleteMessage(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrMessageNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Message not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete message", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted successfully"})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	if v := c.Query(key); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return fallback
}
