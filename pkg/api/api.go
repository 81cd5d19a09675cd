package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"superapp/pkg/logger"
	"superapp/pkg/navigation"
	"superapp/service"
)

type Handler struct {
	svc   service.IServiceManager
	nav   *navigation.Table
	log   logger.ILogger
	now   func() time.Time
	newID func() string
}

func NewRouter(svc service.IServiceManager, nav *navigation.Table, log logger.ILogger) *gin.Engine {
	h := &Handler{
		svc:   svc,
		nav:   nav,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(h.requestLogger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for _, e := range nav.Entries() {
		r.GET(e.Path, h.resolveView)
	}
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	api := r.Group("/api")
	{
		api.GET("/routes", func(c *gin.Context) {
			c.JSON(http.StatusOK, nav.Entries())
		})

		api.GET("/messages", h.listMessages)
		api.POST("/messages", h.addMessage)
		api.DELETE("/messages", h.clearMessages)

		api.GET("/app/loading", h.getLoading)
		api.PUT("/app/loading", h.setLoading)

		orders := api.Group("/orders")
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/current", h.currentOrder)
		orders.GET("/history", h.orderHistory)
		orders.GET("/:id", h.getOrder)
		orders.PATCH("/:id/status", h.updateOrderStatus)

		trips := api.Group("/trips")
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
		trips.GET("/current", h.currentTrip)
		trips.GET("/history", h.tripHistory)
		trips.GET("/:id", h.getTrip)
		trips.PATCH("/:id/status", h.updateTripStatus)
	}

	return r
}

type viewResponse struct {
	Entry navigation.Entry `json:"entry"`
	View  navigation.View  `json:"view"`
}

func (h *Handler) resolveView(c *gin.Context) {
	path := c.FullPath()
	entry, ok := h.nav.Lookup(path)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	view, err := h.nav.Resolve(c.Request.Context(), path)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, viewResponse{Entry: entry, View: view})
	case errors.Is(err, navigation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "view load interrupted, retry"})
	default:
		h.log.Error("failed to resolve view", logger.String("path", path), logger.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "view unavailable, retry"})
	}
}

func (h *Handler) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		h.log.Debug("http request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", c.Writer.Status()),
			logger.Int64("elapsed_ms", time.Since(start).Milliseconds()),
		)
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
