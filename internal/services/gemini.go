package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"boltresume/resume-ai/internal/config"
)

// GeminiService is the only code that talks to the generative model.
type GeminiService interface {
	GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

type geminiService struct {
	client      *genai.Client
	modelName   string
	temperature float32
	maxTokens   int32
	timeout     time.Duration
	maxAttempts int
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &geminiService{
		client:      client,
		modelName:   cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxOutputTokens,
		timeout:     cfg.Timeout,
		maxAttempts: maxAttempts,
	}, nil
}

// GenerateStructured implements GeminiService.
func (g *geminiService) GenerateStructured(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	var lastErr error

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		text, err := g.generateOnce(ctx, prompt, schema)
		if err == nil {
			return text, nil
		}
		lastErr = err

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("context cancelled: %w", ctx.Err())
		default:
		}

		if attempt < g.maxAttempts {
			log.Printf("⚠️ Gemini attempt %d/%d failed: %v. Retrying...", attempt, g.maxAttempts, err)
		}
	}

	if g.maxAttempts == 1 {
		return "", lastErr
	}
	return "", fmt.Errorf("failed after %d attempts: %w", g.maxAttempts, lastErr)
}

func (g *geminiService) generateOnce(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	temperature := g.temperature
	genConfig := &genai.GenerateContentConfig{
		Temperature:      &temperature,
		MaxOutputTokens:  g.maxTokens,
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), genConfig)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("gemini request timed out after %s: %w", g.timeout, err)
		}
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
			return "", fmt.Errorf("no text content in response (finish reason: %s)", resp.Candidates[0].FinishReason)
		}
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}
