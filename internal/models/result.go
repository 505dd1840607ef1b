package models

import "time"

// RankResult is the structured output of the ranking flow.
type RankResult struct {
	MatchScore          int    `json:"matchScore"`
	Summary             string `json:"summary"`
	AreasForImprovement string `json:"areasForImprovement"`
}

type Suggestion struct {
	Section           string   `json:"section"`
	ImprovementPoints []string `json:"improvementPoints"`
}

// SuggestionsResult keeps the section order the model returned.
type SuggestionsResult struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// Normalize replaces nil slices so the result encodes as [] rather than null.
func (r *SuggestionsResult) Normalize() {
	if r.Suggestions == nil {
		r.Suggestions = []Suggestion{}
	}
	for i := range r.Suggestions {
		if r.Suggestions[i].ImprovementPoints == nil {
			r.Suggestions[i].ImprovementPoints = []string{}
		}
	}
}

type ParsedDocument struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string    `json:"status"`
	Mode   string    `json:"mode"`
	Time   time.Time `json:"time"`
}
