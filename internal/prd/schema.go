package prd

import (
	"fmt"
	"regexp"
)

// DefaultRequiredSections are the second-level headings a complete PRD
// is expected to carry. Overridable per SchemaValidator.
var DefaultRequiredSections = []string{
	"Overview",
	"Goals",
	"Requirements",
}

// SchemaValidator performs the stricter section-presence check.
// It is exercised by the validate command only; the publish path relies
// on the structural Validate check alone.
type SchemaValidator struct {
	RequiredSections []string
}

// NewSchemaValidator creates a validator with the default section set.
func NewSchemaValidator() *SchemaValidator {
	return &SchemaValidator{RequiredSections: DefaultRequiredSections}
}

// Validate runs the structural check first, then verifies each required
// section heading is present.
func (v *SchemaValidator) Validate(content string) Result {
	res := Validate(content)
	if !res.Valid {
		return res
	}

	var errs []error
	for _, section := range v.RequiredSections {
		pattern := regexp.MustCompile(`(?mi)^##\s+` + regexp.QuoteMeta(section) + `\b`)
		if !pattern.MatchString(content) {
			errs = append(errs, fmt.Errorf("missing required section %q", section))
		}
	}
	if len(errs) > 0 {
		return Result{Errors: errs}
	}
	return Result{Valid: true}
}
