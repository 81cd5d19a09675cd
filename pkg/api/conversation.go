package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"superapp/pkg/models"
)

func (h *Handler) listMessages(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Conversation().Messages())
}

// addMessage fills in a missing id or timestamp before appending.
func (h *Handler) addMessage(c *gin.Context) {
	var msg models.Message
	if err := c.ShouldBindJSON(&msg); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if !msg.Sender.Valid() {
		badRequest(c, "sender must be user or assistant")
		return
	}
	if msg.Type == "" {
		msg.Type = models.MessageTypeText
	}
	if !msg.Type.Valid() {
		badRequest(c, "type must be text or voice")
		return
	}
	if msg.ID == "" {
		msg.ID = h.newID()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = h.now()
	}

	h.svc.Conversation().AddMessage(msg)
	c.JSON(http.StatusCreated, msg)
}

func (h *Handler) clearMessages(c *gin.Context) {
	h.svc.Conversation().ClearMessages()
	c.Status(http.StatusNoContent)
}

type loadingBody struct {
	Loading *bool `json:"loading"`
}

func (h *Handler) getLoading(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"loading": h.svc.Conversation().IsLoading()})
}

func (h *Handler) setLoading(c *gin.Context) {
	var body loadingBody
	if err := c.ShouldBindJSON(&body); err != nil || body.Loading == nil {
		badRequest(c, "loading flag is required")
		return
	}
	h.svc.Conversation().SetLoading(*body.Loading)
	c.JSON(http.StatusOK, gin.H{"loading": *body.Loading})
}
