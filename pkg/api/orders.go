package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"superapp/pkg/models"
)

type statusBody struct {
	Status string `json:"status"`
}

func (h *Handler) createOrder(c *gin.Context) {
	var in models.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if !in.Status.Valid() {
		badRequest(c, "invalid order status")
		return
	}

	c.JSON(http.StatusCreated, h.svc.Order().CreateOrder(in))
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Order().Orders())
}

func (h *Handler) currentOrder(c *gin.Context) {
	order, ok := h.svc.Order().CurrentOrder()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"order": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) orderHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Order().OrderHistory())
}

func (h *Handler) getOrder(c *gin.Context) {
	order, ok := h.svc.Order().GetOrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// updateOrderStatus answers 200 even for unknown orders; "updated" tells the caller.
func (h *Handler) updateOrderStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	status, err := models.ParseOrderStatus(body.Status)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	updated := h.svc.Order().UpdateOrderStatus(c.Param("id"), status)
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
