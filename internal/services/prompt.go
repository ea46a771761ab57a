package services

import (
	"fmt"
	"math"
	"strings"

	"fitcoach/internal/models"
)

// promptInstructions is the output-format contract the parser depends on.
// The pipe-separator requirement must stay in sync with ParseRecommendations.
const promptInstructions = `Please provide 3-4 specific, actionable tasks for tomorrow:
- include at least one exercise task
- include at least one nutrition task
- every task must be achievable within 24 hours
Respond with the tasks separated by a single pipe character (|) and no other text.`

// BuildNextDayPrompt renders the user prompt for one pipeline run: profile
// fields, today's log, the 7-day averages, then the fixed instruction block.
// Average calories are rounded to the nearest whole unit and average
// activity to one decimal place. Deterministic for identical inputs.
func BuildNextDayPrompt(user *models.User, entry *models.DailyLog, trend TrendSummary) string {
	var sb strings.Builder

	sb.WriteString("Based on today's activity log and user profile, provide personalized guidance for tomorrow:\n\n")
	sb.WriteString("User Profile:\n")
	sb.WriteString(fmt.Sprintf("- Age: %d\n", user.Age))
	sb.WriteString(fmt.Sprintf("- Weight: %g\n", user.Weight))
	sb.WriteString(fmt.Sprintf("- Height: %g\n", user.Height))
	sb.WriteString(fmt.Sprintf("- Location: %s\n", user.Geography))
	sb.WriteString("Today's Activity:\n")
	sb.WriteString(fmt.Sprintf("- Calories: %d\n", entry.Calories))
	sb.WriteString(fmt.Sprintf("- Activity Level: %d\n", entry.ActivityLevel))
	sb.WriteString("Recent Trend (last 7 logs):\n")
	sb.WriteString(fmt.Sprintf("- Average Calories: %d\n", int(math.Round(trend.AvgCalories))))
	sb.WriteString(fmt.Sprintf("- Average Activity Level: %.1f\n", trend.AvgActivity))
	sb.WriteString("\n")
	sb.WriteString(promptInstructions)

	return sb.String()
}
