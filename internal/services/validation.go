package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"boltresume/resume-ai/internal/config"
	"boltresume/resume-ai/internal/models"
)

type lengthRule struct {
	value    string
	bounds   config.Bounds
	tooShort string
	tooLong  string
}

// RequestValidator checks free-text inputs against the configured bounds
// table. It has no side effects and never talks to the model.
type RequestValidator struct {
	validate *validator.Validate
	bounds   config.ValidationConfig
}

func NewRequestValidator(bounds config.ValidationConfig) *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
		bounds:   bounds,
	}
}

// ValidateRankRequest returns one message per violated constraint, in field order.
func (v *RequestValidator) ValidateRankRequest(req models.RankRequest) []string {
	return v.collect(
		lengthRule{
			value:    req.ResumeText,
			bounds:   v.bounds.RankResumeText,
			tooShort: "Please paste your full resume content.",
			tooLong:  "Resume is too long.",
		},
		lengthRule{
			value:    req.JobDescriptionText,
			bounds:   v.bounds.RankJobDescriptionText,
			tooShort: "Please paste the full job description.",
			tooLong:  "Job description is too long.",
		},
	)
}

func (v *RequestValidator) ValidateSuggestionsRequest(req models.SuggestionsRequest) []string {
	return v.collect(
		lengthRule{
			value:    req.ResumeContent,
			bounds:   v.bounds.SuggestResumeContent,
			tooShort: "Resume content is too short.",
			tooLong:  "Resume content is too long.",
		},
		lengthRule{
			value:    req.JobDescription,
			bounds:   v.bounds.SuggestJobDescription,
			tooShort: "Target job description is too short.",
			tooLong:  "Target job description is too long.",
		},
	)
}

func (v *RequestValidator) ValidateLogin(req models.LoginRequest) []string {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"Invalid login request."}
	}

	var violations []string
	for _, fe := range fieldErrs {
		switch fe.Field() {
		case "Email":
			violations = append(violations, "Please enter a valid email address.")
		case "Password":
			violations = append(violations, "Password must be at least 6 characters.")
		default:
			violations = append(violations, fmt.Sprintf("%s is invalid.", fe.Field()))
		}
	}
	return violations
}

func (v *RequestValidator) collect(rules ...lengthRule) []string {
	var violations []string
	for _, rule := range rules {
		if msg := v.check(rule); msg != "" {
			violations = append(violations, msg)
		}
	}
	return violations
}

// check reports at most one violation per field: a value cannot be both too
// short and too long.
func (v *RequestValidator) check(rule lengthRule) string {
	if rule.bounds.Min > 0 {
		if err := v.validate.Var(rule.value, fmt.Sprintf("min=%d", rule.bounds.Min)); err != nil {
			return rule.tooShort
		}
	}
	if rule.bounds.Max > 0 {
		if err := v.validate.Var(rule.value, fmt.Sprintf("max=%d", rule.bounds.Max)); err != nil {
			return rule.tooLong
		}
	}
	return ""
}
