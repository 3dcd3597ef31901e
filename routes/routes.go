package routes

import (
	"net/http"
	"time"

	"bookify/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers the router wires up.
type HandlerBundle struct {
	Booking  *handlers.BookingHandler
	Business *handlers.BusinessHandler
	Device   *handlers.DeviceHandler
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.POST("/:id/confirm", hb.Booking.ConfirmBookingHandler)
		api.POST("/:id/reject", hb.Booking.RejectBookingHandler)
		api.POST("/:id/cancel", hb.Booking.CancelBookingHandler)
		api.POST("/:id/progress", hb.Booking.ProgressBookingHandler)
	}
}

// RegisterBusinessRoutes registers schedule and device endpoints for businesses.
func RegisterBusinessRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/businesses")
	{
		api.PUT("/:id/schedule", hb.Business.UpdateScheduleHandler)
		api.GET("/:id/availability", hb.Business.CheckAvailabilityHandler)
		api.GET("/:id/bookings", hb.Booking.ListBusinessBookingsHandler)
		api.POST("/:id/devices", hb.Device.RegisterBusinessTokensHandler)
		api.DELETE("/:id/devices", hb.Device.UnregisterBusinessTokensHandler)
	}
}

// RegisterClientRoutes registers booking and device endpoints for clients.
func RegisterClientRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/clients")
	{
		api.GET("/:id/bookings", hb.Booking.ListClientBookingsHandler)
		api.POST("/:id/devices", hb.Device.RegisterClientTokensHandler)
		api.DELETE("/:id/devices", hb.Device.UnregisterClientTokensHandler)
	}
}

// RegisterHealthRoute exposes a basic liveness endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterBusinessRoutes(r, hb)
	RegisterClientRoutes(r, hb)
}
