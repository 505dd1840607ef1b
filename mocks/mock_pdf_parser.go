package mocks

import (
	"github.com/stretchr/testify/mock"

	"boltresume/resume-ai/internal/services"
)

// MockPDFParserService is a mock implementation of services.PDFParserService.
type MockPDFParserService struct {
	mock.Mock
}

func (m *MockPDFParserService) ExtractText(filePath string) (string, error) {
	args := m.Called(filePath)
	return args.String(0), args.Error(1)
}

func (m *MockPDFParserService) ExtractTextWithMetaData(filePath string) (*services.PDFContent, error) {
	args := m.Called(filePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.PDFContent), args.Error(1)
}
