package routes

import (
	"fitcoach/internal/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutes := router.Group("/api")
	{
		userRoutes.POST("/onboarding", userController.Onboarding)
		userRoutes.DELETE("/user/:id", userController.DeleteUser)
	}
}
