package services

import (
	"context"
	"errors"

	"boltresume/resume-ai/internal/models"
)

type SuggestionService interface {
	Suggest(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error)
}

type suggestionService struct {
	validator *RequestValidator
	flows     FlowClient
}

func NewSuggestionService(validator *RequestValidator, flows FlowClient) SuggestionService {
	return &suggestionService{
		validator: validator,
		flows:     flows,
	}
}

// Suggest implements SuggestionService.
func (s *suggestionService) Suggest(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error) {
	if violations := s.validator.ValidateSuggestionsRequest(req); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	result, err := s.flows.SuggestImprovements(ctx, req)
	if err != nil {
		return nil, &ServiceError{Flow: "suggestions", Err: err}
	}
	if result == nil {
		return nil, &ServiceError{Flow: "suggestions", Err: errors.New("flow returned no result")}
	}

	result.Normalize()
	return result, nil
}
