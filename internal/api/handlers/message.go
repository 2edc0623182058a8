package handlers

import (
	"net/http"

	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler handles direct messages between staff
type MessageHandler struct {
	messageService service.MessageServiceInterface
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService service.MessageServiceInterface) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// UnreadCountResponse is the body of GET /messages/unread-count
type UnreadCountResponse struct {
	Unread int64 `json:"unread" example:"3"`
}

// Inbox handles GET /messages
// @Summary Inbox
// @Tags messages
// @Produce json
// @Param unread query bool false "Only unread messages"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MessageListResponse "Received messages, newest first"
// @Security BearerAuth
// @Router /messages [get]
func (h *MessageHandler) Inbox(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	messages, err := h.messageService.Inbox(c.Request.Context(), caller, queryBool(c, "unread"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Sent handles GET /messages/sent
// @Summary Sent messages
// @Tags messages
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MessageListResponse "Sent messages, newest first"
// @Security BearerAuth
// @Router /messages/sent [get]
func (h *MessageHandler) Sent(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	page, pageSize := pagination(c)

	messages, err := h.messageService.Sent(c.Request.Context(), caller, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// UnreadCount handles GET /messages/unread-count
// @Summary Count unread messages
// @Tags messages
// @Produce json
// @Success 200 {object} UnreadCountResponse "Unread count"
// @Security BearerAuth
// @Router /messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	count, err := h.messageService.UnreadCount(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, UnreadCountResponse{Unread: count})
}

// Send handles POST /messages
// @Summary Send a message
// @Description Guards may only message supervisors and above
// @Tags messages
// @Accept json
// @Produce json
// @Param message body service.SendMessageRequest true "Message"
// @Success 201 {object} service.MessageResponse "Sent message"
// @Failure 400 {object} ValidationErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Recipient not allowed"
// @Security BearerAuth
// @Router /messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	message, err := h.messageService.Send(c.Request.Context(), caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

// MarkRead handles POST /messages/:id/read
// @Summary Mark a message as read
// @Tags messages
// @Produce json
// @Param id path string true "Message ID (UUID)"
// @Success 200 {object} service.MessageResponse "Message"
// @Failure 403 {object} ErrorResponse "Not the recipient"
// @Security BearerAuth
// @Router /messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id", "message")
	if !ok {
		return
	}

	message, err := h.messageService.MarkRead(c.Request.Context(), caller, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}
