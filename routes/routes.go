package routes

import (
	"github.com/Jc007zZ/mealtracker/controllers"
	"github.com/Jc007zZ/mealtracker/middlewares"
	"github.com/Jc007zZ/mealtracker/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the whole API surface. The DB handle and refresh hub
// are built by the caller and injected down through the services.
func SetupRouter(db *gorm.DB, hub *services.RefreshHub, jwtSecret []byte) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestID())

	authSvc := services.NewAuthService(db, jwtSecret)
	mealSvc := services.NewMealService(db, hub)
	goalSvc := services.NewGoalService(db, hub)

	authCtl := controllers.NewAuthController(authSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	goalCtl := controllers.NewGoalController(goalSvc)
	statsCtl := controllers.NewStatsController(mealSvc, goalSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		meals := api.Group("/meals")
		{
			meals.GET("", mealCtl.ListMeals)
			meals.POST("", mealCtl.CreateMeal)
			meals.GET("/:id", mealCtl.GetMeal)
			meals.PUT("/:id", mealCtl.UpdateMeal)
			meals.DELETE("/:id", mealCtl.DeleteMeal)
			meals.PUT("/check/:id", mealCtl.CheckMeal)
			meals.PUT("/uncheck/:id", mealCtl.UncheckMeal)
		}

		goals := api.Group("/goals")
		{
			goals.GET("", goalCtl.GetGoals)
			goals.PUT("", goalCtl.UpdateGoals)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/calories", statsCtl.CaloriesByType)
			stats.GET("/summary", statsCtl.Summary)
		}
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware(jwtSecret))
	{
		ws.GET("", realtimeCtl.RefreshWS)
	}

	return r
}
