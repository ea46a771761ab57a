package mocks

import (
	"context"
	"fitcoach/internal/models"

	"github.com/stretchr/testify/mock"
)

// Shared MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDWithLogs(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockRecommendationRepository
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) FindAllByUserID(userID uint) ([]models.Recommendation, error) {
	args := m.Called(userID)
	return args.Get(0).([]models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) FindByID(id uint) (*models.Recommendation, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

func (m *MockRecommendationRepository) MarkDone(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockRecommendationRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockUserProfileRepository
type MockUserProfileRepository struct {
	mock.Mock
}

func (m *MockUserProfileRepository) FindByUserID(userID uint) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockUserProfileRepository) Upsert(profile *models.UserProfile) error {
	args := m.Called(profile)
	return args.Error(0)
}

func (m *MockUserProfileRepository) DeleteByUserID(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) SaveNextDayPlan(recs []models.Recommendation, entry *models.DailyLog) error {
	args := m.Called(recs, entry)
	return args.Error(0)
}

// MockRecommendationCache is a mock implementation of cache.RecommendationCache
type MockRecommendationCache struct {
	mock.Mock
}

func (m *MockRecommendationCache) Get(userID uint) ([]models.Recommendation, bool, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]models.Recommendation), args.Bool(1), args.Error(2)
}

func (m *MockRecommendationCache) Set(userID uint, recs []models.Recommendation) error {
	args := m.Called(userID, recs)
	return args.Error(0)
}

func (m *MockRecommendationCache) Invalidate(userID uint) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockRecommendationCache) Status() (map[string]interface{}, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *MockRecommendationCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockGenerator is a mock implementation of llm.Client
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
