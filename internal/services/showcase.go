package services

import (
	"context"
	"log"
	"time"

	"boltresume/resume-ai/internal/models"
)

// showcaseFlowClient serves fixed demonstration results without calling the
// model. It is selected with FLOW_MODE=demo.
type showcaseFlowClient struct {
	delay time.Duration
}

func NewShowcaseFlowClient(delay time.Duration) FlowClient {
	return &showcaseFlowClient{delay: delay}
}

// RankResume implements FlowClient.
func (s *showcaseFlowClient) RankResume(ctx context.Context, _ models.RankRequest) (*models.RankResult, error) {
	log.Println("🎭 Showcase mode: returning canned ranking")
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return &models.RankResult{
		MatchScore: 82,
		Summary: "Strong alignment on core backend skills and years of experience. " +
			"The resume demonstrates ownership of production services but undersells measurable impact " +
			"and mentions few of the cloud tools named in the job description.",
		AreasForImprovement: "Quantify achievements (latency, cost, adoption) for your last two roles. " +
			"Mirror the posting's terminology for cloud and CI/CD tooling. " +
			"Move the skills section above education and trim older, unrelated experience.",
	}, nil
}

// SuggestImprovements implements FlowClient.
func (s *showcaseFlowClient) SuggestImprovements(ctx context.Context, _ models.SuggestionsRequest) (*models.SuggestionsResult, error) {
	log.Println("🎭 Showcase mode: returning canned suggestions")
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	return &models.SuggestionsResult{
		Suggestions: []models.Suggestion{
			{
				Section: "Summary",
				ImprovementPoints: []string{
					"Open with the target job title and your years of relevant experience.",
					"Name two or three skills from the job description you are strongest in.",
				},
			},
			{
				Section: "Experience",
				ImprovementPoints: []string{
					"Start each bullet with an action verb and end it with a measurable result.",
					"Highlight projects that match the responsibilities listed in the posting.",
				},
			},
			{
				Section: "Skills",
				ImprovementPoints: []string{
					"Group skills by category and drop tools you have not used recently.",
				},
			},
		},
	}, nil
}

func (s *showcaseFlowClient) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
