package services

import (
	"fmt"
	"strings"
)

// ValidationError lists every constraint the request violated.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}

// ServiceError wraps a failure of the external generative model. Its cause is
// for server logs only.
type ServiceError struct {
	Flow string
	Err  error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s flow failed: %v", e.Flow, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ExtractionError means the document parsed but carried no text layer.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return e.Message
}

// ParseError means the document could not be read at all.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return "failed to parse PDF"
	}
	return fmt.Sprintf("failed to parse PDF: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

const imageOnlyPDFMessage = "No text could be extracted from this PDF. It may be a scanned or image-only document; please upload a text-based PDF or paste the content instead."
