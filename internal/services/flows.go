package services

import (
	"context"
	"fmt"
	"log"
	"math"

	"boltresume/resume-ai/internal/config"
	"boltresume/resume-ai/internal/models"
)

// FlowClient runs the two generative flows. Implementations return raw
// errors; the ranking and suggestion services decide how they surface.
type FlowClient interface {
	RankResume(ctx context.Context, req models.RankRequest) (*models.RankResult, error)
	SuggestImprovements(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error)
}

type geminiFlowClient struct {
	gemini            GeminiService
	prompts           *PromptBuilder
	rankOutput        *OutputSchema
	suggestionsOutput *OutputSchema
}

func NewGeminiFlowClient(gemini GeminiService, prompts *PromptBuilder) (FlowClient, error) {
	rankOutput, err := NewOutputSchema("rank", rankOutputJSONSchema)
	if err != nil {
		return nil, err
	}
	suggestionsOutput, err := NewOutputSchema("suggestions", suggestionsOutputJSONSchema)
	if err != nil {
		return nil, err
	}

	return &geminiFlowClient{
		gemini:            gemini,
		prompts:           prompts,
		rankOutput:        rankOutput,
		suggestionsOutput: suggestionsOutput,
	}, nil
}

// rankPayload accepts matchScore in any JSON number form the schema allows
// ("82" and "82.0" both validate as integers).
type rankPayload struct {
	MatchScore          float64 `json:"matchScore"`
	Summary             string  `json:"summary"`
	AreasForImprovement string  `json:"areasForImprovement"`
}

func (o rankPayload) toResult() (*models.RankResult, error) {
	if o.MatchScore != math.Trunc(o.MatchScore) || o.MatchScore < 0 || o.MatchScore > 100 {
		return nil, fmt.Errorf("matchScore %v is not an integer in [0,100]", o.MatchScore)
	}

	return &models.RankResult{
		MatchScore:          int(o.MatchScore),
		Summary:             o.Summary,
		AreasForImprovement: o.AreasForImprovement,
	}, nil
}

// RankResume implements FlowClient.
func (f *geminiFlowClient) RankResume(ctx context.Context, req models.RankRequest) (*models.RankResult, error) {
	prompt, err := f.prompts.Render(RankPromptName, req)
	if err != nil {
		return nil, err
	}

	log.Printf("📝 Rank prompt length: %d characters", len(prompt))

	response, err := f.gemini.GenerateStructured(ctx, prompt, rankResponseSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ranking: %w", err)
	}

	var out rankPayload
	if err := f.rankOutput.Decode(response, &out); err != nil {
		return nil, err
	}

	return out.toResult()
}

// SuggestImprovements implements FlowClient.
func (f *geminiFlowClient) SuggestImprovements(ctx context.Context, req models.SuggestionsRequest) (*models.SuggestionsResult, error) {
	prompt, err := f.prompts.Render(SuggestionPromptName, req)
	if err != nil {
		return nil, err
	}

	log.Printf("📝 Suggestions prompt length: %d characters", len(prompt))

	response, err := f.gemini.GenerateStructured(ctx, prompt, suggestionsResponseSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	var result models.SuggestionsResult
	if err := f.suggestionsOutput.Decode(response, &result); err != nil {
		return nil, err
	}
	result.Normalize()

	return &result, nil
}

// NewFlowClientFromConfig picks the showcase client in demo mode and the
// Gemini-backed client otherwise.
func NewFlowClientFromConfig(cfg *config.Config) (FlowClient, error) {
	if cfg.IsDemo() {
		log.Printf("🎭 Showcase mode enabled, model calls are disabled (delay %s)", cfg.Flow.DemoDelay)
		return NewShowcaseFlowClient(cfg.Flow.DemoDelay), nil
	}

	prompts, err := NewPromptBuilder(cfg.Flow.PromptDir)
	if err != nil {
		return nil, err
	}

	gemini, err := NewGeminiService(cfg.Gemini)
	if err != nil {
		return nil, err
	}
	log.Printf("✅ Gemini initialized (model %s)", cfg.Gemini.Model)

	return NewGeminiFlowClient(gemini, prompts)
}
