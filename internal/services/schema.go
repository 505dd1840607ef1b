package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"google.golang.org/genai"
)

func float64Ptr(v float64) *float64 {
	return &v
}

// rankResponseSchema constrains the model's reply for the ranking flow.
var rankResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"matchScore": {
			Type:        genai.TypeInteger,
			Description: "A score (0-100) representing how well the resume matches the job description.",
			Minimum:     float64Ptr(0),
			Maximum:     float64Ptr(100),
		},
		"summary": {
			Type:        genai.TypeString,
			Description: "A summary of why the resume received the score it did.",
		},
		"areasForImprovement": {
			Type:        genai.TypeString,
			Description: "Specific suggestions for improving the resume to better match the job description.",
		},
	},
	Required:         []string{"matchScore", "summary", "areasForImprovement"},
	PropertyOrdering: []string{"matchScore", "summary", "areasForImprovement"},
}

var suggestionsResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"suggestions": {
			Type:        genai.TypeArray,
			Description: "A list of suggestions for improving the resume, tailored to the job description.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"section": {
						Type:        genai.TypeString,
						Description: "The resume section the suggestion applies to.",
					},
					"improvementPoints": {
						Type:        genai.TypeArray,
						Description: "Specific suggestions for improving the section.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
				},
				Required:         []string{"section", "improvementPoints"},
				PropertyOrdering: []string{"section", "improvementPoints"},
			},
		},
	},
	Required: []string{"suggestions"},
}

// The JSON Schemas below re-check what the model actually returned; the
// response schema above is only a request to the provider.
const rankOutputJSONSchema = `{
  "type": "object",
  "required": ["matchScore", "summary", "areasForImprovement"],
  "properties": {
    "matchScore": {"type": "integer", "minimum": 0, "maximum": 100},
    "summary": {"type": "string"},
    "areasForImprovement": {"type": "string"}
  }
}`

const suggestionsOutputJSONSchema = `{
  "type": "object",
  "required": ["suggestions"],
  "properties": {
    "suggestions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["section", "improvementPoints"],
        "properties": {
          "section": {"type": "string"},
          "improvementPoints": {"type": "array", "items": {"type": "string"}}
        }
      }
    }
  }
}`

// OutputSchema validates and decodes one flow's structured model output.
type OutputSchema struct {
	name   string
	schema *gojsonschema.Schema
}

func NewOutputSchema(name, jsonSchema string) (*OutputSchema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(jsonSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile %s output schema: %w", name, err)
	}
	return &OutputSchema{name: name, schema: schema}, nil
}

// Decode strips any markdown wrapping from raw, checks it against the schema
// and unmarshals it into target.
func (s *OutputSchema) Decode(raw string, target any) error {
	jsonStr := extractJSON(raw)
	if strings.TrimSpace(jsonStr) == "" {
		return fmt.Errorf("empty %s output", s.name)
	}

	result, err := s.schema.Validate(gojsonschema.NewStringLoader(jsonStr))
	if err != nil {
		return fmt.Errorf("malformed %s output: %w", s.name, err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			problems = append(problems, re.String())
		}
		return fmt.Errorf("%s output does not match schema: %s", s.name, strings.Join(problems, "; "))
	}

	if err := json.Unmarshal([]byte(jsonStr), target); err != nil {
		return fmt.Errorf("failed to unmarshal %s output: %w", s.name, err)
	}
	return nil
}

// extractJSON tries to extract JSON from text that might contain markdown or other formatting
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
