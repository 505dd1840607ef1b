package services_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
	"boltresume/resume-ai/mocks"
)

func newRankingService() (services.RankingService, *mocks.MockFlowClient) {
	flows := new(mocks.MockFlowClient)
	return services.NewRankingService(services.NewRequestValidator(testBounds()), flows), flows
}

func validRankRequest() models.RankRequest {
	return models.RankRequest{
		ResumeText:         strings.Repeat("Go developer with five years of backend experience. ", 3),
		JobDescriptionText: "We are hiring a backend engineer to build APIs in Go.",
	}
}

func TestRankingService_Rank_Success(t *testing.T) {
	svc, flows := newRankingService()
	req := validRankRequest()
	expected := &models.RankResult{MatchScore: 75, Summary: "Good fit", AreasForImprovement: "Add metrics"}

	flows.On("RankResume", mock.Anything, req).Return(expected, nil)

	result, err := svc.Rank(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
	flows.AssertExpectations(t)
}

func TestRankingService_Rank_ValidationFailsBeforeFlow(t *testing.T) {
	svc, flows := newRankingService()

	result, err := svc.Rank(context.Background(), models.RankRequest{ResumeText: "short", JobDescriptionText: "short"})

	assert.Nil(t, result)
	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Violations, 2)
	flows.AssertNotCalled(t, "RankResume", mock.Anything, mock.Anything)
}

func TestRankingService_Rank_FlowFailure(t *testing.T) {
	svc, flows := newRankingService()
	cause := errors.New("quota exceeded")

	flows.On("RankResume", mock.Anything, mock.Anything).Return(nil, cause)

	result, err := svc.Rank(context.Background(), validRankRequest())

	assert.Nil(t, result)
	var serviceErr *services.ServiceError
	require.ErrorAs(t, err, &serviceErr)
	assert.Equal(t, "rank", serviceErr.Flow)
	assert.ErrorIs(t, err, cause)
}

func TestRankingService_Rank_NilResult(t *testing.T) {
	svc, flows := newRankingService()

	flows.On("RankResume", mock.Anything, mock.Anything).Return(nil, nil)

	_, err := svc.Rank(context.Background(), validRankRequest())

	var serviceErr *services.ServiceError
	assert.ErrorAs(t, err, &serviceErr)
}

func TestRankingService_Rank_FlowFailureLeavesLoggingToCaller(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	svc, flows := newRankingService()
	flows.On("RankResume", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

	_, err := svc.Rank(context.Background(), validRankRequest())

	require.Error(t, err)
	assert.Empty(t, logs.String())
}
