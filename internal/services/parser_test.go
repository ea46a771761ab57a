package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecommendationsSplitsOnPipe(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC)

	recs, err := ParseRecommendations("Jog 20 minutes|Eat a salad|Sleep 8 hours", 7, now)

	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Jog 20 minutes", recs[0].Task)
	assert.Equal(t, "Eat a salad", recs[1].Task)
	assert.Equal(t, "Sleep 8 hours", recs[2].Task)

	for _, rec := range recs {
		assert.Equal(t, uint(7), rec.UserID)
		assert.Equal(t, now.Add(24*time.Hour), rec.DueDate)
		assert.False(t, rec.Done)
	}
}

func TestParseRecommendationsKeepsSegmentsVerbatim(t *testing.T) {
	recs, err := ParseRecommendations(" Jog 20 minutes | Eat a salad ", 1, time.Now())

	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, " Jog 20 minutes ", recs[0].Task)
	assert.Equal(t, " Eat a salad ", recs[1].Task)
}

func TestParseRecommendationsAmbiguousReply(t *testing.T) {
	recs, err := ParseRecommendations("Just take a rest day tomorrow.", 3, time.Now())

	assert.ErrorIs(t, err, ErrAmbiguousReply)
	require.Len(t, recs, 1)
	assert.Equal(t, "Just take a rest day tomorrow.", recs[0].Task)
	assert.Equal(t, uint(3), recs[0].UserID)
}

func TestParseRecommendationsEmptyReply(t *testing.T) {
	recs, err := ParseRecommendations("", 3, time.Now())

	assert.ErrorIs(t, err, ErrAmbiguousReply)
	require.Len(t, recs, 1)
	assert.Equal(t, "", recs[0].Task)
}
