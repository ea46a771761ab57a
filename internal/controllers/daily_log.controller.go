package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"fitcoach/internal/cache"
	"fitcoach/internal/models"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"

	"github.com/gin-gonic/gin"
)

type DailyLogController struct {
	planner *services.PlanService
	plans   repository.PlanRepository
	cache   cache.RecommendationCache
}

// NewDailyLogController wires the log-submission endpoint. recCache may be
// nil when Redis is not configured.
func NewDailyLogController(planner *services.PlanService, plans repository.PlanRepository, recCache cache.RecommendationCache) *DailyLogController {
	return &DailyLogController{planner: planner, plans: plans, cache: recCache}
}

type DailyLogRequest struct {
	UserID        string     `json:"userId" binding:"required" example:"1"`
	Calories      *int       `json:"calories" binding:"required" example:"2200"`
	ActivityLevel *int       `json:"activityLevel" binding:"required" example:"60"`
	LoggedAt      *time.Time `json:"loggedAt" swaggerignore:"true"`
}

// SubmitDailyLog godoc
// @Summary Submit a daily activity log
// @Description Record today's calories and activity level, generate next-day recommendations, and store both
// @Tags logs
// @Accept json
// @Produce json
// @Param log body DailyLogRequest true "Daily log data"
// @Success 200 {object} map[string]interface{} "Daily log recorded and next-day plan generated"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Failed to generate or save the plan"
// @Router /log [post]
func (dc *DailyLogController) SubmitDailyLog(c *gin.Context) {
	var req DailyLogRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	userID, err := strconv.ParseUint(req.UserID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	loggedAt := time.Now()
	if req.LoggedAt != nil {
		loggedAt = *req.LoggedAt
	}

	entry := &models.DailyLog{
		UserID:        uint(userID),
		Calories:      *req.Calories,
		ActivityLevel: *req.ActivityLevel,
		LoggedAt:      loggedAt,
	}

	recs, err := dc.planner.GenerateNextDayPlan(c.Request.Context(), uint(userID), entry)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "User not found",
				"error":   "No user exists with the provided ID",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to generate next-day plan",
			"error":   err.Error(),
		})
		return
	}

	if err := dc.plans.SaveNextDayPlan(recs, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to save next-day plan",
			"error":   err.Error(),
		})
		return
	}

	if dc.cache != nil {
		if err := dc.cache.Invalidate(uint(userID)); err != nil {
			log.Printf("Failed to invalidate recommendation cache for user %d: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Daily log recorded and next-day plan generated",
		"data": gin.H{
			"userId":          uint(userID),
			"recommendations": formatRecommendations(recs),
		},
	})
}
