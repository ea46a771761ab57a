package controllers

import (
	"math"
	"net/http"
	"strconv"

	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	users    repository.UserRepository
	profiles repository.UserProfileRepository
}

func NewUserProfileController(users repository.UserRepository, profiles repository.UserProfileRepository) *UserProfileController {
	return &UserProfileController{users: users, profiles: profiles}
}

type ProfileRequest struct {
	Goal              *string  `json:"goal" example:"lose weight"`
	TargetWeight      *float64 `json:"target_weight" example:"68.5"`
	DietaryPreference *string  `json:"dietary_preference" example:"vegetarian"`
	Notes             *string  `json:"notes" example:"prefers morning workouts"`
}

// GetUserProfile godoc
// @Summary Get a user's profile
// @Description Retrieve the user, their coaching profile, and derived BMI
// @Tags profile
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "User profile retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 404 {object} map[string]interface{} "User or profile not found"
// @Router /profile/{user_id} [get]
func (pc *UserProfileController) GetUserProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	user, err := pc.users.FindByID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	profile, err := pc.profiles.FindByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   "No profile exists for this user",
		})
		return
	}

	data := gin.H{
		"user":    user,
		"profile": profile,
	}
	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		data["bmi"] = gin.H{
			"value":    math.Round(bmi*10) / 10,
			"category": utils.BMICategory(bmi),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User profile retrieved successfully",
		"data":    data,
	})
}

// UpsertUserProfile godoc
// @Summary Create or update a user's profile
// @Description Upsert coaching preferences for a user; omitted fields keep their stored values
// @Tags profile
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param profile body ProfileRequest true "Profile data"
// @Success 200 {object} map[string]interface{} "Profile saved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to save profile"
// @Router /profile/{user_id} [put]
func (pc *UserProfileController) UpsertUserProfile(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if _, err := pc.users.FindByID(uint(userID)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists with the provided ID",
		})
		return
	}

	profile := models.UserProfile{
		UserID:            uint(userID),
		Goal:              req.Goal,
		TargetWeight:      req.TargetWeight,
		DietaryPreference: req.DietaryPreference,
		Notes:             req.Notes,
	}

	if err := pc.profiles.Upsert(&profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile saved successfully",
		"data":    profile,
	})
}
