package controllers

import (
	"log"
	"net/http"
	"strconv"

	"fitcoach/internal/cache"
	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo     repository.UserRepository
	profiles repository.UserProfileRepository
	cache    cache.RecommendationCache
}

// NewUserController wires the onboarding and account endpoints. recCache
// may be nil when Redis is not configured.
func NewUserController(repo repository.UserRepository, profiles repository.UserProfileRepository, recCache cache.RecommendationCache) *UserController {
	return &UserController{repo: repo, profiles: profiles, cache: recCache}
}

type OnboardingRequest struct {
	Weight    *float64 `json:"weight" binding:"required" example:"72.5"`
	Height    *float64 `json:"height" binding:"required" example:"178"`
	Age       *int     `json:"age" binding:"required" example:"29"`
	Geography *string  `json:"geography" binding:"required" example:"Jakarta"`
}

func (uc *UserController) Onboarding(c *gin.Context) {
	var req OnboardingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Weight:    *req.Weight,
		Height:    *req.Height,
		Age:       *req.Age,
		Geography: *req.Geography,
	}

	if err := uc.repo.Create(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create user",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "User onboarded successfully",
		"data": gin.H{
			"userId": user.ID,
		},
	})
}

// DeleteUser removes the account and its profile row. The profile is
// deleted first so a failure there never leaves an orphaned profile
// behind a removed user.
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if _, err := uc.repo.FindByID(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	if err := uc.profiles.DeleteByUserID(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   "Database deletion failed",
		})
		return
	}

	if err := uc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete user",
			"error":   "Database deletion failed",
		})
		return
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(uint(id)); err != nil {
			log.Printf("Failed to invalidate recommendation cache for user %d: %v", id, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User deleted successfully",
		"data":    nil,
	})
}
