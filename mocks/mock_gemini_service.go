package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"google.golang.org/genai"
)

// MockGeminiService is a mock implementation of services.GeminiService.
type MockGeminiService struct {
	mock.Mock
}

func (m *MockGeminiService) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	args := m.Called(ctx, prompt, schema)
	return args.String(0), args.Error(1)
}
