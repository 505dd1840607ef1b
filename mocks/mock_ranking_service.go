package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boltresume/resume-ai/internal/models"
)

// MockRankingService is a mock implementation of services.RankingService.
type MockRankingService struct {
	mock.Mock
}

func (m *MockRankingService) Rank(ctx context.Context, req models.RankRequest) (*models.RankResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RankResult), args.Error(1)
}
