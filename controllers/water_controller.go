package controllers

import (
	"errors"
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	logs *services.LogService
	hub  *services.RealtimeHub
}

func NewWaterController(logs *services.LogService, hub *services.RealtimeHub) *WaterController {
	return &WaterController{logs: logs, hub: hub}
}

type waterInput struct {
	Date   string `json:"date" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
}

func (wc *WaterController) LogWater(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	var input waterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := wc.logs.LogWater(id.ID, input.Date, input.Amount)
	if err != nil {
		if errors.Is(err, services.ErrWaterTooSmall) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log water"})
		return
	}

	wc.hub.BroadcastLogUpdate(id.ID, log)
	c.JSON(http.StatusOK, gin.H{"message": "Water logged"})
}
