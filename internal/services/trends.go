package services

import (
	"sort"

	"fitcoach/internal/models"
)

// trendWindow is the number of most recent logs contributing to the averages.
const trendWindow = 7

// TrendSummary holds aggregate statistics over a recent window of daily logs.
type TrendSummary struct {
	AvgCalories float64
	AvgActivity float64
}

// SummarizeTrend reduces a log history to mean calories and mean activity
// over the trendWindow most recent entries. Stored logs are not guaranteed
// chronological, so entries are ordered by LoggedAt before windowing; the
// input slice is never mutated. An empty history yields (0, 0).
func SummarizeTrend(logs []models.DailyLog) TrendSummary {
	if len(logs) == 0 {
		return TrendSummary{}
	}

	sorted := make([]models.DailyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.Before(sorted[j].LoggedAt)
	})

	if len(sorted) > trendWindow {
		sorted = sorted[len(sorted)-trendWindow:]
	}

	var calories, activity float64
	for _, entry := range sorted {
		calories += float64(entry.Calories)
		activity += float64(entry.ActivityLevel)
	}

	n := float64(len(sorted))
	return TrendSummary{
		AvgCalories: calories / n,
		AvgActivity: activity / n,
	}
}
