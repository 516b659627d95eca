package controllers

import (
	"net/http"

	"github.com/r-4-e/SwasthAI/utils"

	"github.com/gin-gonic/gin"
)

type PlanController struct{}

func NewPlanController() *PlanController {
	return &PlanController{}
}

// CalculatePlan is the server-side twin of the onboarding wizard's
// calorie/macro calculator.
func (pc *PlanController) CalculatePlan(c *gin.Context) {
	var input utils.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := utils.CalculatePlan(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}
