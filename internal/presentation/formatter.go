// Package presentation handles command output formatting.
package presentation

import (
	"encoding/json"
	"io"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatPublishResult formats a publish result as JSON
func (f *Formatter) FormatPublishResult(result PublishResultDTO) error {
	return f.encode(result)
}

// FormatEntries formats registry entries as JSON
func (f *Formatter) FormatEntries(entries []EntryDTO) error {
	return f.encode(entries)
}

// FormatReport formats an ad-hoc report (validate, verify) as JSON
func (f *Formatter) FormatReport(report any) error {
	return f.encode(report)
}

func (f *Formatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
