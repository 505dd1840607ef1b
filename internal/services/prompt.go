package services

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

const (
	RankPromptName       = "rankResumeAgainstJobDescriptionPrompt"
	SuggestionPromptName = "aiResumeSuggestionsPrompt"
)

const defaultRankPrompt = `You are an expert resume reviewer. Your task is to analyze the provided resume and job description.

Based on your analysis, you will:
1. Provide a "matchScore" from 0 to 100, where 100 is a perfect match.
2. Write a "summary" explaining the key strengths and weaknesses of the resume in relation to the job.
3. Provide "areasForImprovement" with specific, actionable advice on how to make the resume a better fit for the role.

Resume:
{{.ResumeText}}

Job Description:
{{.JobDescriptionText}}
`

const defaultSuggestionPrompt = `You are an AI resume expert. Given the resume content and the job description, you will provide context-aware suggestions and auto-generate improvement points for weak sections.

Resume Content:
{{.ResumeContent}}

Job Description:
{{.JobDescription}}

Provide a list of suggestions for improving the resume, tailored to the job description. Focus on providing actionable improvement points for each section of the resume.
`

// PromptBuilder renders the named instruction templates of each flow.
type PromptBuilder struct {
	templates map[string]*template.Template
}

// NewPromptBuilder parses the built-in templates. When dir is set, a file named
// <template name>.tmpl in it replaces the built-in text of that template.
func NewPromptBuilder(dir string) (*PromptBuilder, error) {
	sources := map[string]string{
		RankPromptName:       defaultRankPrompt,
		SuggestionPromptName: defaultSuggestionPrompt,
	}

	if dir != "" {
		for name := range sources {
			path := filepath.Join(dir, name+".tmpl")
			content, err := os.ReadFile(path)
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("failed to read prompt template %s: %w", path, err)
			}
			sources[name] = string(content)
		}
	}

	pb := &PromptBuilder{templates: make(map[string]*template.Template, len(sources))}
	for name, src := range sources {
		tmpl, err := template.New(name).Option("missingkey=error").Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse prompt template %s: %w", name, err)
		}
		pb.templates[name] = tmpl
	}

	return pb, nil
}

// Render executes the named template with data.
func (pb *PromptBuilder) Render(name string, data any) (string, error) {
	tmpl, ok := pb.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render prompt %s: %w", name, err)
	}
	return buf.String(), nil
}
