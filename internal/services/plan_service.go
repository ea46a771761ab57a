package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"fitcoach/internal/llm"
	"fitcoach/internal/models"
	"fitcoach/internal/repository"

	"gorm.io/gorm"
)

// PlanService runs the next-day plan pipeline: fetch the user with their
// log history, summarize the recent trend, compose the prompt, invoke the
// generation client once, parse the reply into recommendations. It never
// persists anything; storing the result after full success is the caller's
// responsibility.
type PlanService struct {
	users     repository.UserRepository
	generator llm.Client
	nowFn     func() time.Time
}

func NewPlanService(users repository.UserRepository, generator llm.Client) *PlanService {
	return &PlanService{
		users:     users,
		generator: generator,
		nowFn:     time.Now,
	}
}

// GenerateNextDayPlan produces the recommendation batch for one submitted
// daily log. Stages run in order and the first failure aborts the rest: an
// unknown user returns ErrUserNotFound before the generator is ever
// invoked, and any generator failure comes back wrapped in
// ErrGenerationFailed.
func (s *PlanService) GenerateNextDayPlan(ctx context.Context, userID uint, entry *models.DailyLog) ([]models.Recommendation, error) {
	user, err := s.users.FindByIDWithLogs(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %d: %w", userID, err)
	}

	trend := SummarizeTrend(user.DailyLogs)
	prompt := BuildNextDayPrompt(user, entry, trend)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	recs, parseErr := ParseRecommendations(reply, userID, s.nowFn())
	if parseErr != nil {
		// Ambiguous replies still yield a usable single-task fallback.
		log.Printf("Ambiguous reply while planning for user %d: %v", userID, parseErr)
	}

	return recs, nil
}
