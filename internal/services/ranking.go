package services

import (
	"context"
	"errors"

	"boltresume/resume-ai/internal/models"
)

type RankingService interface {
	Rank(ctx context.Context, req models.RankRequest) (*models.RankResult, error)
}

type rankingService struct {
	validator *RequestValidator
	flows     FlowClient
}

func NewRankingService(validator *RequestValidator, flows FlowClient) RankingService {
	return &rankingService{
		validator: validator,
		flows:     flows,
	}
}

// Rank implements RankingService. Validation always runs before the model is
// called; the model's result is returned as is.
func (s *rankingService) Rank(ctx context.Context, req models.RankRequest) (*models.RankResult, error) {
	if violations := s.validator.ValidateRankRequest(req); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	result, err := s.flows.RankResume(ctx, req)
	if err != nil {
		return nil, &ServiceError{Flow: "rank", Err: err}
	}
	if result == nil {
		return nil, &ServiceError{Flow: "rank", Err: errors.New("flow returned no result")}
	}

	return result, nil
}
