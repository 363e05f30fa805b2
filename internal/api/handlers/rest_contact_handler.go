package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/goldenharvestfarm/goldenharvest-backend/internal/services"
)

// RestContactHandler handles contact form submissions and the admin
// message review endpoint.
type RestContactHandler struct {
	contactService services.IContactService
}

// NewRestContactHandler creates a new RestContactHandler.
func NewRestContactHandler(contactService services.IContactService) *RestContactHandler {
	return &RestContactHandler{contactService: contactService}
}

type submitMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage handles POST /api/contact. Pure persistence: the stored
// record is returned, nothing is delivered anywhere.
func (h *RestContactHandler) SubmitMessage(c *gin.Context) {
	var req submitMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit message: " + err.Error()})
		return
	}

	msg, err := h.contactService.CreateMessage(c.Request.Context(), req.Name, req.Email, req.Phone, req.Subject, req.Message)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListMessages handles GET /api/admin/messages. All messages, newest first.
func (h *RestContactHandler) ListMessages(c *gin.Context) {
	messages, err := h.contactService.ListMessages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
