package routes

import (
	"github.com/Techlead-ANKAN/WeightTracker/controllers"
	"github.com/Techlead-ANKAN/WeightTracker/middlewares"
	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, authSvc *services.AuthService) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	foodCtl := controllers.NewFoodController(services.NewFoodService(db))
	logCtl := controllers.NewDailyLogController(services.NewDailyLogService(db))
	weightCtl := controllers.NewWeightController(services.NewWeightService(db))
	devCtl := controllers.NewDevController(services.NewSeedService(db))
	authCtl := controllers.NewAuthController(authSvc)

	r.GET("/", controllers.Root)

	auth := r.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
	}

	api := r.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)

		api.GET("/foods", foodCtl.ListFoods)

		// Catalog mutations are admin-only.
		admin := api.Group("")
		admin.Use(middlewares.AuthMiddleware())
		{
			admin.POST("/foods", foodCtl.CreateFood)
			admin.PUT("/foods/:id", foodCtl.UpdateFood)
			admin.DELETE("/foods/:id", foodCtl.DeleteFood)
			admin.POST("/dev/seed-foods", devCtl.SeedFoods)
		}

		// /range must stay a static sibling of the :date param route.
		api.GET("/daily-log/range", logCtl.GetByRange)
		api.GET("/daily-log/:date", logCtl.GetByDate)
		api.POST("/daily-log", logCtl.SaveLog)

		api.GET("/weight", weightCtl.ListWeights)
		api.POST("/weight", weightCtl.SaveWeight)
	}

	return r
}
