// Package prd validates product-requirements documents and extracts
// metadata from them.
package prd

import (
	"errors"
	"regexp"
	"strings"
)

// Validation errors for the structural check.
var (
	// ErrEmptyDocument indicates the document is blank after trimming.
	ErrEmptyDocument = errors.New("document is empty")

	// ErrMissingTitle indicates no "# PRD:" title line was found.
	ErrMissingTitle = errors.New("document has no '# PRD:' title line")
)

// titleLine matches the canonical PRD title anywhere in the document.
var titleLine = regexp.MustCompile(`(?m)^#\s+PRD:`)

// Result holds the outcome of a structural validation.
type Result struct {
	Valid  bool
	Errors []error
}

// Validate performs the structural check used by the publish path.
// It does not inspect the document body; see SchemaValidator for the
// stricter section-aware check.
func Validate(content string) Result {
	if strings.TrimSpace(content) == "" {
		return Result{Errors: []error{ErrEmptyDocument}}
	}
	if !titleLine.MatchString(content) {
		return Result{Errors: []error{ErrMissingTitle}}
	}
	return Result{Valid: true}
}

// Err returns the first validation error, or nil when valid.
func (r Result) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}
