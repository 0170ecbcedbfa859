// Package schemas provides JSON Schema validation for structured JD and
// resume documents before they enter the scoring engine. Missing fields are
// fine (the scorers treat them as empty collections); a wrong top-level type
// or a wrongly shaped field is a hard error here.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed jd.schema.json
var jdSchema []byte

//go:embed resume.schema.json
var resumeSchema []byte

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Document string
	Errors   []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Document))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or evaluating the schema itself.
type SchemaLoadError struct {
	Document string
	Cause    error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to evaluate %s schema: %v", e.Document, e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJD validates a structured JD document against the embedded schema.
func ValidateJD(doc []byte) error {
	return validate(jdSchema, doc, "structured JD")
}

// ValidateResume validates a structured resume document against the embedded schema.
func ValidateResume(doc []byte) error {
	return validate(resumeSchema, doc, "structured resume")
}

func validate(schema, doc []byte, name string) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return &SchemaLoadError{Document: name, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Document: name}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
