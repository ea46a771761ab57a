package services

import (
	"testing"
	"time"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func logOnDay(day, calories, activity int) models.DailyLog {
	return models.DailyLog{
		Calories:      calories,
		ActivityLevel: activity,
		LoggedAt:      time.Date(2025, 3, day, 8, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeTrendEmptyHistory(t *testing.T) {
	trend := SummarizeTrend(nil)

	assert.Equal(t, 0.0, trend.AvgCalories)
	assert.Equal(t, 0.0, trend.AvgActivity)
}

func TestSummarizeTrendShortHistory(t *testing.T) {
	logs := []models.DailyLog{
		logOnDay(1, 2000, 40),
		logOnDay(2, 2200, 60),
		logOnDay(3, 1800, 50),
	}

	trend := SummarizeTrend(logs)

	assert.InDelta(t, 2000.0, trend.AvgCalories, 0.001)
	assert.InDelta(t, 50.0, trend.AvgActivity, 0.001)
}

func TestSummarizeTrendKeepsLastSevenLogs(t *testing.T) {
	logs := make([]models.DailyLog, 0, 10)
	for day := 1; day <= 10; day++ {
		logs = append(logs, logOnDay(day, day*100, day))
	}

	trend := SummarizeTrend(logs)

	// Days 4 through 10 survive the window.
	assert.InDelta(t, 700.0, trend.AvgCalories, 0.001)
	assert.InDelta(t, 7.0, trend.AvgActivity, 0.001)
}

func TestSummarizeTrendOrdersByLoggedAt(t *testing.T) {
	// Stored order is not chronological; the oldest entry must still be
	// the one the window drops.
	logs := []models.DailyLog{
		logOnDay(8, 800, 8),
		logOnDay(1, 100, 1),
		logOnDay(5, 500, 5),
		logOnDay(3, 300, 3),
		logOnDay(7, 700, 7),
		logOnDay(2, 200, 2),
		logOnDay(6, 600, 6),
		logOnDay(4, 400, 4),
	}

	trend := SummarizeTrend(logs)

	assert.InDelta(t, 500.0, trend.AvgCalories, 0.001)
	assert.InDelta(t, 5.0, trend.AvgActivity, 0.001)
}

func TestSummarizeTrendDoesNotMutateInput(t *testing.T) {
	logs := []models.DailyLog{
		logOnDay(3, 300, 3),
		logOnDay(1, 100, 1),
		logOnDay(2, 200, 2),
	}

	SummarizeTrend(logs)

	assert.Equal(t, 300, logs[0].Calories)
	assert.Equal(t, 100, logs[1].Calories)
	assert.Equal(t, 200, logs[2].Calories)
}
