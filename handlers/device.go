package handlers

import (
	"net/http"

	businessRepo "bookify/database/repository/business"
	clientRepo "bookify/database/repository/client"
	"bookify/utils"

	"github.com/gin-gonic/gin"
)

// DeviceHandler manages the FCM tokens booking notifications fan out to.
type DeviceHandler struct {
	Clients    clientRepo.ClientRepository
	Businesses businessRepo.BusinessRepository
}

func NewDeviceHandler(clients clientRepo.ClientRepository, businesses businessRepo.BusinessRepository) *DeviceHandler {
	return &DeviceHandler{Clients: clients, Businesses: businesses}
}

type tokenInput struct {
	Tokens []string `json:"tokens" binding:"required,min=1"`
}

// RegisterClientTokensHandler handles POST /api/clients/:id/devices.
func (h *DeviceHandler) RegisterClientTokensHandler(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Clients.AddTokens(c.Param("id"), input.Tokens); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to register tokens", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tokens registered"})
}

// UnregisterClientTokensHandler handles DELETE /api/clients/:id/devices.
func (h *DeviceHandler) UnregisterClientTokensHandler(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Clients.RemoveTokens(c.Param("id"), input.Tokens); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to remove tokens", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tokens removed"})
}

// RegisterBusinessTokensHandler handles POST /api/businesses/:id/devices.
func (h *DeviceHandler) RegisterBusinessTokensHandler(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Businesses.AddTokens(c.Param("id"), input.Tokens); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to register tokens", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tokens registered"})
}

// UnregisterBusinessTokensHandler handles DELETE /api/businesses/:id/devices.
func (h *DeviceHandler) UnregisterBusinessTokensHandler(c *gin.Context) {
	var input tokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Businesses.RemoveTokens(c.Param("id"), input.Tokens); err != nil {
		utils.JSONError(c, http.StatusNotFound, "failed to remove tokens", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tokens removed"})
}
