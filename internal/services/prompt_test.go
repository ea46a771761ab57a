package services

import (
	"strings"
	"testing"

	"fitcoach/internal/models"

	"github.com/stretchr/testify/assert"
)

func promptFixtures() (*models.User, *models.DailyLog) {
	user := &models.User{
		Age:       29,
		Weight:    72.5,
		Height:    178,
		Geography: "Jakarta",
	}
	entry := &models.DailyLog{
		Calories:      2200,
		ActivityLevel: 60,
	}
	return user, entry
}

func TestBuildNextDayPromptIncludesProfileAndLog(t *testing.T) {
	user, entry := promptFixtures()
	trend := TrendSummary{AvgCalories: 2050, AvgActivity: 55}

	prompt := BuildNextDayPrompt(user, entry, trend)

	assert.Contains(t, prompt, "- Age: 29\n")
	assert.Contains(t, prompt, "- Weight: 72.5\n")
	assert.Contains(t, prompt, "- Height: 178\n")
	assert.Contains(t, prompt, "- Location: Jakarta\n")
	assert.Contains(t, prompt, "- Calories: 2200\n")
	assert.Contains(t, prompt, "- Activity Level: 60\n")
}

func TestBuildNextDayPromptRoundsTrendAverages(t *testing.T) {
	user, entry := promptFixtures()
	trend := TrendSummary{AvgCalories: 2123.6, AvgActivity: 55.34}

	prompt := BuildNextDayPrompt(user, entry, trend)

	assert.Contains(t, prompt, "- Average Calories: 2124\n")
	assert.Contains(t, prompt, "- Average Activity Level: 55.3\n")
}

func TestBuildNextDayPromptZeroTrend(t *testing.T) {
	user, entry := promptFixtures()

	prompt := BuildNextDayPrompt(user, entry, TrendSummary{})

	assert.Contains(t, prompt, "- Average Calories: 0\n")
	assert.Contains(t, prompt, "- Average Activity Level: 0.0\n")
}

func TestBuildNextDayPromptEndsWithOutputContract(t *testing.T) {
	user, entry := promptFixtures()

	prompt := BuildNextDayPrompt(user, entry, TrendSummary{})

	assert.Contains(t, prompt, "Recent Trend (last 7 logs):\n")
	assert.True(t, strings.HasSuffix(prompt, "separated by a single pipe character (|) and no other text."))
}

func TestBuildNextDayPromptDeterministic(t *testing.T) {
	user, entry := promptFixtures()
	trend := TrendSummary{AvgCalories: 2000, AvgActivity: 50}

	assert.Equal(t, BuildNextDayPrompt(user, entry, trend), BuildNextDayPrompt(user, entry, trend))
}
