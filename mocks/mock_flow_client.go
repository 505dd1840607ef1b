package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boltresume/resume-ai/internal/models"
)

// MockFlowClient is a mock implementation of services.FlowClient.
type MockFlowClient struct {
	mock.Mock
}

func (m *MockFlowClient) RankResume(ctx context.Context, req models.RankRequest) (*models.RankResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RankResult), args.Error(1)
}

func (m *MockFlowClient) SuggestImprovements(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SuggestionsResult), args.Error(1)
}
