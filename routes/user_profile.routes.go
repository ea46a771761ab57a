package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserProfileRoutes(router *gin.Engine, userProfileController *controllers.UserProfileController) {
	profileRoutes := router.Group("/api/profile")
	{
		profileRoutes.GET("/:user_id", userProfileController.GetUserProfile)
		profileRoutes.PUT("/:user_id", userProfileController.UpsertUserProfile)
	}
}
