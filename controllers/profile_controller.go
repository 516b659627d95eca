package controllers

import (
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{profiles: profiles}
}

func (pc *ProfileController) GetProfile(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	profile, err := pc.profiles.GetProfile(id.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (pc *ProfileController) SaveProfile(c *gin.Context) {
	id, _ := middlewares.CurrentIdentity(c)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := pc.profiles.SaveProfile(id.ID, input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
