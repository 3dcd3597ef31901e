package handlers

import (
	"errors"
	"net/http"

	"bookify/services/booking"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle over HTTP.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// respondBookingError maps the core's typed errors onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var (
		validation *booking.ValidationError
		notFound   *booking.NotFoundError
		conflict   *booking.ConflictError
		forbidden  *booking.ForbiddenError
		denied     *booking.ScheduleDeniedError
	)
	switch {
	case errors.As(err, &validation):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", validation.Error())
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "not found", notFound.Error())
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":         conflict.Error(),
			"currentStatus": conflict.Current,
		})
	case errors.As(err, &forbidden):
		utils.JSONError(c, http.StatusForbidden, "forbidden", forbidden.Error())
	case errors.As(err, &denied):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":        denied.Error(),
			"reason":       denied.Reason,
			"allowedRange": denied.AllowedRange,
		})
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Svc.Create(c.Request.Context(), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"booking":       res.Booking,
		"notifications": res.Notifications,
	})
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}

// ListClientBookingsHandler handles GET /api/clients/:id/bookings.
func (h *BookingHandler) ListClientBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListByClient(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListBusinessBookingsHandler handles GET /api/businesses/:id/bookings.
func (h *BookingHandler) ListBusinessBookingsHandler(c *gin.Context) {
	bookings, err := h.Svc.ListByBusiness(c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ConfirmBookingHandler handles POST /api/bookings/:id/confirm.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	res, err := h.Svc.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":       res.Booking,
		"notifications": res.Notifications,
	})
}

// RejectBookingHandler handles POST /api/bookings/:id/reject.
func (h *BookingHandler) RejectBookingHandler(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Svc.Reject(c.Request.Context(), c.Param("id"), input.Reason)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":       res.Booking,
		"notifications": res.Notifications,
	})
}

// CancelBookingHandler handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	var input struct {
		ClientID string `json:"clientId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Svc.Cancel(c.Request.Context(), c.Param("id"), input.ClientID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":       res.Booking,
		"notifications": res.Notifications,
	})
}

// ProgressBookingHandler handles POST /api/bookings/:id/progress.
func (h *BookingHandler) ProgressBookingHandler(c *gin.Context) {
	var update booking.ProgressUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	res, err := h.Svc.Progress(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"booking":       res.Booking,
		"notifications": res.Notifications,
	})
}
