package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"boltresume/resume-ai/internal/models"
)

// MockSuggestionService is a mock implementation of services.SuggestionService.
type MockSuggestionService struct {
	mock.Mock
}

func (m *MockSuggestionService) Suggest(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SuggestionsResult), args.Error(1)
}
