package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"boltresume/resume-ai/internal/config"
	"boltresume/resume-ai/internal/models"
	"boltresume/resume-ai/internal/services"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Score a resume against a job description",
	Long:  "Runs the ranking flow and prints the match score, summary and areas for improvement as JSON. Inputs ending in .pdf are extracted first.",
	RunE:  runRank,
}

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Get section-by-section resume suggestions for a target job",
	Long:  "Runs the suggestions flow and prints the suggestions as JSON. Inputs ending in .pdf are extracted first.",
	RunE:  runSuggest,
}

var (
	flowResume string
	flowJob    string
)

func init() {
	for _, cmd := range []*cobra.Command{rankCmd, suggestCmd} {
		cmd.Flags().StringVarP(&flowResume, "resume", "r", "", "Path to the resume (.pdf or plain text) (required)")
		cmd.Flags().StringVarP(&flowJob, "job", "j", "", "Path to the job description (.pdf or plain text) (required)")

		if err := cmd.MarkFlagRequired("resume"); err != nil {
			panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
		}
		if err := cmd.MarkFlagRequired("job"); err != nil {
			panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
		}

		rootCmd.AddCommand(cmd)
	}
}

func runRank(cmd *cobra.Command, _ []string) error {
	cfg, flows, err := loadFlows()
	if err != nil {
		return err
	}

	resume, job, err := readInputs(services.NewPDFParserService())
	if err != nil {
		return err
	}

	ranking := services.NewRankingService(services.NewRequestValidator(cfg.Validation), flows)
	result, err := ranking.Rank(cmd.Context(), models.RankRequest{
		ResumeText:         resume,
		JobDescriptionText: job,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd, result)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	cfg, flows, err := loadFlows()
	if err != nil {
		return err
	}

	resume, job, err := readInputs(services.NewPDFParserService())
	if err != nil {
		return err
	}

	suggestions := services.NewSuggestionService(services.NewRequestValidator(cfg.Validation), flows)
	result, err := suggestions.Suggest(cmd.Context(), models.SuggestionsRequest{
		ResumeContent:  resume,
		JobDescription: job,
	})
	if err != nil {
		return err
	}

	return writeJSON(cmd, result)
}

func loadFlows() (*config.Config, services.FlowClient, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	flows, err := services.NewFlowClientFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize flow client: %w", err)
	}

	return cfg, flows, nil
}

func readInputs(pdfParser services.PDFParserService) (string, string, error) {
	resume, err := readInput(pdfParser, flowResume)
	if err != nil {
		return "", "", err
	}

	job, err := readInput(pdfParser, flowJob)
	if err != nil {
		return "", "", err
	}

	return resume, job, nil
}

// readInput extracts .pdf files and reads everything else as UTF-8 text.
func readInput(pdfParser services.PDFParserService, path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return pdfParser.ExtractText(path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	return string(content), nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
