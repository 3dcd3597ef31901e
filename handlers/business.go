package handlers

import (
	"net/http"
	"time"

	businessRepo "bookify/database/repository/business"
	"bookify/models"
	"bookify/services/availability"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// BusinessHandler exposes schedule management and availability previews.
type BusinessHandler struct {
	Businesses businessRepo.BusinessRepository
}

func NewBusinessHandler(repo businessRepo.BusinessRepository) *BusinessHandler {
	return &BusinessHandler{Businesses: repo}
}

// UpdateScheduleHandler handles PUT /api/businesses/:id/schedule.
func (h *BusinessHandler) UpdateScheduleHandler(c *gin.Context) {
	var schedule models.WeeklySchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := schedule.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid schedule", "details": err.Error()})
		return
	}

	if err := h.Businesses.UpdateSchedule(c.Param("id"), &schedule); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedule": schedule})
}

// CheckAvailabilityHandler handles GET /api/businesses/:id/availability?at=RFC3339.
// It lets clients preview whether a time would pass the booking check.
func (h *BusinessHandler) CheckAvailabilityHandler(c *gin.Context) {
	at, err := time.Parse(time.RFC3339, c.Query("at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'at' parameter, want RFC3339", "details": err.Error()})
		return
	}

	schedule, err := h.Businesses.GetSchedule(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "business not found", err.Error())
		return
	}
	if schedule == nil {
		// No schedule configured means no time constraint is enforced.
		c.JSON(http.StatusOK, availability.Decision{Allowed: true})
		return
	}
	c.JSON(http.StatusOK, availability.Check(schedule, at))
}
