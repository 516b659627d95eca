package routes

import (
	"net/http"

	"github.com/r-4-e/SwasthAI/controllers"
	"github.com/r-4-e/SwasthAI/middlewares"
	"github.com/r-4-e/SwasthAI/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries the explicitly constructed collaborators the router needs.
// Photos may be nil (archive disabled).
type Deps struct {
	DB       *gorm.DB
	Identity *services.IdentityService
	Vision   *services.VisionService
	Hub      *services.RealtimeHub
	Photos   *services.PhotoArchive
}

func SetupRouter(d Deps) *gin.Engine {
	profileSvc := services.NewProfileService(d.DB)
	dashboardSvc := services.NewDashboardService(d.DB)
	logSvc := services.NewLogService(d.DB)
	enhanceSvc := services.NewEnhanceService(d.DB)

	auth := controllers.NewAuthController(profileSvc)
	profile := controllers.NewProfileController(profileSvc)
	dashboard := controllers.NewDashboardController(dashboardSvc)
	food := controllers.NewFoodController(logSvc, d.Hub)
	water := controllers.NewWaterController(logSvc, d.Hub)
	meal := controllers.NewMealController(d.Vision, enhanceSvc, d.Photos)
	plan := controllers.NewPlanController()
	realtime := controllers.NewRealtimeController(d.Hub)

	r := gin.Default()
	r.Use(middlewares.ResolveIdentity(d.Identity))

	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api.POST("/auth/sync", auth.Sync)

	protected := api.Group("")
	protected.Use(middlewares.RequireAuth())
	{
		protected.GET("/profile", profile.GetProfile)
		protected.POST("/profile", profile.SaveProfile)
		protected.GET("/dashboard/:date", dashboard.GetDashboard)
		protected.POST("/food", food.LogFood)
		protected.POST("/food/batch", food.SaveBatch)
		protected.POST("/water", water.LogWater)
		protected.POST("/analyze-meal", meal.AnalyzeMeal)
		protected.POST("/calculate-plan", plan.CalculatePlan)
		protected.GET("/ws", realtime.LogUpdatesWS)
	}

	return r
}
