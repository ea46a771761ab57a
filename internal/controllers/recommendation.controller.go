package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"fitcoach/internal/cache"
	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	repo  repository.RecommendationRepository
	cache cache.RecommendationCache
}

// NewRecommendationController wires the recommendation read endpoints.
// recCache may be nil when Redis is not configured.
func NewRecommendationController(repo repository.RecommendationRepository, recCache cache.RecommendationCache) *RecommendationController {
	return &RecommendationController{repo: repo, cache: recCache}
}

// formatRecommendations renders recommendations into the response shape
// shared by the list and log-submission endpoints, with RFC3339 due dates.
func formatRecommendations(recs []models.Recommendation) []gin.H {
	out := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		out = append(out, gin.H{
			"id":      rec.ID,
			"task":    rec.Task,
			"dueDate": rec.DueDate.Format(time.RFC3339),
			"done":    rec.Done,
		})
	}
	return out
}

// GetRecommendationsByUserID godoc
// @Summary Get all recommendations for a user
// @Description Retrieve all recommendations associated with a specific user ID
// @Tags recommendations
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} map[string]interface{} "Recommendations retrieved successfully"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve recommendations"
// @Router /recommendations/{user_id} [get]
func (rc *RecommendationController) GetRecommendationsByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid user ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	if rc.cache != nil {
		recs, found, err := rc.cache.Get(uint(userID))
		if err != nil {
			log.Printf("Recommendation cache read failed for user %d: %v", userID, err)
		} else if found {
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "Recommendations retrieved successfully",
				"data": gin.H{
					"recommendations": formatRecommendations(recs),
				},
			})
			return
		}
	}

	recs, err := rc.repo.FindAllByUserID(uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve recommendations",
			"error":   err.Error(),
		})
		return
	}

	if rc.cache != nil {
		if err := rc.cache.Set(uint(userID), recs); err != nil {
			log.Printf("Failed to cache recommendations for user %d: %v", userID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendations retrieved successfully",
		"data": gin.H{
			"recommendations": formatRecommendations(recs),
		},
	})
}

// MarkRecommendationDone godoc
// @Summary Mark a recommendation as done
// @Description Set the done flag on a recommendation by ID
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} map[string]interface{} "Recommendation marked as done"
// @Failure 400 {object} map[string]interface{} "Invalid recommendation ID"
// @Failure 404 {object} map[string]interface{} "Recommendation not found"
// @Failure 500 {object} map[string]interface{} "Failed to update recommendation"
// @Router /recommendation/{id}/done [patch]
func (rc *RecommendationController) MarkRecommendationDone(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recommendation ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	rec, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recommendation not found",
			"error":   "No recommendation exists with the provided ID",
		})
		return
	}

	if err := rc.repo.MarkDone(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update recommendation",
			"error":   err.Error(),
		})
		return
	}
	rec.Done = true

	rc.invalidateCache(rec.UserID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendation marked as done",
		"data":    rec,
	})
}

// DeleteRecommendation godoc
// @Summary Delete a recommendation
// @Description Delete recommendation by ID
// @Tags recommendations
// @Produce json
// @Param id path int true "Recommendation ID"
// @Success 200 {object} map[string]interface{} "Recommendation deleted successfully"
// @Failure 400 {object} map[string]interface{} "Invalid recommendation ID"
// @Failure 404 {object} map[string]interface{} "Recommendation not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete recommendation"
// @Router /recommendation/{id} [delete]
func (rc *RecommendationController) DeleteRecommendation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid recommendation ID",
			"error":   "ID must be a valid positive integer",
		})
		return
	}

	rec, err := rc.repo.FindByID(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Recommendation not found",
			"error":   "No recommendation exists with the provided ID",
		})
		return
	}

	if err := rc.repo.Delete(uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete recommendation",
			"error":   err.Error(),
		})
		return
	}

	rc.invalidateCache(rec.UserID)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Recommendation deleted successfully",
		"data":    nil,
	})
}

func (rc *RecommendationController) invalidateCache(userID uint) {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.Invalidate(userID); err != nil {
		log.Printf("Failed to invalidate recommendation cache for user %d: %v", userID, err)
	}
}
