package services

import (
	"strings"
	"time"

	"fitcoach/internal/models"
)

// dueDateOffset is how far in the future every parsed task falls due:
// exactly 24 hours after the pipeline's invocation time, not the next
// calendar date.
const dueDateOffset = 24 * time.Hour

// ParseRecommendations splits a raw model reply on the pipe separator into
// one Recommendation per segment. Segments are kept verbatim, surrounding
// whitespace included, so the stored task matches the model's text exactly.
// All results share the same DueDate and owning UserID. A reply with zero
// separators (including an empty reply) yields one Recommendation carrying
// the full text together with ErrAmbiguousReply, so the caller can log the
// malformed reply instead of silently persisting it.
func ParseRecommendations(raw string, userID uint, now time.Time) ([]models.Recommendation, error) {
	dueDate := now.Add(dueDateOffset)

	tasks := strings.Split(raw, "|")
	recs := make([]models.Recommendation, 0, len(tasks))
	for _, task := range tasks {
		recs = append(recs, models.Recommendation{
			UserID:  userID,
			Task:    task,
			DueDate: dueDate,
			Done:    false,
		})
	}

	if len(tasks) < 2 {
		return recs, ErrAmbiguousReply
	}
	return recs, nil
}
