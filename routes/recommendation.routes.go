package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRecommendationRoutes(router *gin.Engine, recommendationController *controllers.RecommendationController) {
	listRoutes := router.Group("/api/recommendations")
	{
		listRoutes.GET("/:user_id", recommendationController.GetRecommendationsByUserID)
	}
	itemRoutes := router.Group("/api/recommendation")
	{
		itemRoutes.PATCH("/:id/done", recommendationController.MarkRecommendationDone)
		itemRoutes.DELETE("/:id", recommendationController.DeleteRecommendation)
	}
}
