package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterDailyLogRoutes(router *gin.Engine, dailyLogController *controllers.DailyLogController) {
	logRoutes := router.Group("/api")
	{
		logRoutes.POST("/log", dailyLogController.SubmitDailyLog)
	}
}
