package controllers

import (
	"errors"
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	logs *services.LogService
	hub  *services.RealtimeHub
}

func NewFoodController(logs *services.LogService, hub *services.RealtimeHub) *FoodController {
	return &FoodController{logs: logs, hub: hub}
}

// LogFood records one food entry and bumps the day's aggregate.
func (fc *FoodController) LogFood(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	var input services.FoodInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := fc.logs.LogFood(id.ID, input)
	if err != nil {
		if errors.Is(err, services.ErrBadMealType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log food"})
		return
	}

	fc.hub.BroadcastLogUpdate(id.ID, log)
	c.JSON(http.StatusOK, gin.H{"message": "Food logged"})
}

type batchInput struct {
	Date  string                    `json:"date" binding:"required"`
	Items []services.SavedItemInput `json:"items" binding:"required"`
}

// SaveBatch commits every item of an analyzed meal atomically — partial
// failure rolls the whole meal back.
func (fc *FoodController) SaveBatch(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	var input batchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := fc.logs.SaveMealItems(id.ID, input.Date, input.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadOil),
			errors.Is(err, services.ErrNoItems),
			errors.Is(err, services.ErrBadMealType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log meal"})
		}
		return
	}

	fc.hub.BroadcastLogUpdate(id.ID, log)
	c.JSON(http.StatusOK, gin.H{"message": "Meal logged", "saved": len(input.Items)})
}
