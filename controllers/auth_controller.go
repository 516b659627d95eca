package controllers

import (
	"net/http"

	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	profiles *services.ProfileService
}

func NewAuthController(profiles *services.ProfileService) *AuthController {
	return &AuthController{profiles: profiles}
}

type syncInput struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Sync creates the local user row on first login and reports whether the
// onboarding profile exists yet.
func (ac *AuthController) Sync(c *gin.Context) {
	id, ok := middlewares.CurrentIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	// Email and name may arrive in the body or ride along in the token.
	var body syncInput
	_ = c.ShouldBindJSON(&body)
	email := body.Email
	if email == "" {
		email = id.Email
	}
	name := body.Name
	if name == "" {
		name = id.Name
	}

	user, hasProfile, err := ac.profiles.SyncUser(id.ID, email, name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":       gin.H{"id": user.ID, "email": user.Email, "name": user.Name},
		"hasProfile": hasProfile,
	})
}
