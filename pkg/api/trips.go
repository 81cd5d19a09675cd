package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"superapp/pkg/models"
)

func (h *Handler) createTrip(c *gin.Context) {
	var in models.TripInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	if !in.Status.Valid() {
		badRequest(c, "invalid trip status")
		return
	}

	c.JSON(http.StatusCreated, h.svc.Trip().CreateTrip(in))
}

func (h *Handler) listTrips(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Trip().Trips())
}

func (h *Handler) currentTrip(c *gin.Context) {
	trip, ok := h.svc.Trip().CurrentTrip()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"trip": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trip": trip})
}

func (h *Handler) tripHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Trip().TripHistory())
}

func (h *Handler) getTrip(c *gin.Context) {
	trip, ok := h.svc.Trip().GetTripByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "trip not found"})
		return
	}
	c.JSON(http.StatusOK, trip)
}

func (h *Handler) updateTripStatus(c *gin.Context) {
	var body statusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "invalid JSON body")
		return
	}
	status, err := models.ParseTripStatus(body.Status)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	updated := h.svc.Trip().UpdateTripStatus(c.Param("id"), status)
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
