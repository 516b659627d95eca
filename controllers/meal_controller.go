package controllers

import (
	"log"
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	vision  *services.VisionService
	enhance *services.EnhanceService
	photos  *services.PhotoArchive
}

func NewMealController(vision *services.VisionService, enhance *services.EnhanceService, photos *services.PhotoArchive) *MealController {
	return &MealController{vision: vision, enhance: enhance, photos: photos}
}

type analyzeInput struct {
	ImageBase64 string `json:"imageBase64" binding:"required"`
	Mode        string `json:"mode"`
}

// AnalyzeMeal runs the full pipeline: vision estimation, then reference
// reconciliation. Any failure aborts the whole request — no partial
// results. Committing the finalized items is a separate round-trip.
func (mc *MealController) AnalyzeMeal(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	var input analyzeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image required"})
		return
	}
	mode := input.Mode
	if mode == "" {
		mode = services.ScanModePlate
	}

	items, err := mc.vision.AnalyzeImage(c.Request.Context(), input.ImageBase64, mode)
	if err != nil {
		log.Printf("vision API error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	enhanced, err := mc.enhance.Enhance(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	if key, err := mc.photos.Archive(c.Request.Context(), id.ID, input.ImageBase64); err != nil {
		log.Printf("meal photo archive failed: %v", err)
	} else if key != "" {
		log.Printf("archived meal photo %s", key)
	}

	c.JSON(http.StatusOK, gin.H{"items": enhanced})
}
