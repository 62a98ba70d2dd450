package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prdhub/prdhub/internal/naming"
	"github.com/prdhub/prdhub/internal/prd"
	"github.com/prdhub/prdhub/internal/presentation"
)

var validateFile string

// validationReport is the JSON shape printed by the validate command.
type validationReport struct {
	Valid       bool     `json:"valid"`
	File        string   `json:"file"`
	ProductName string   `json:"product_name,omitempty"`
	Slug        string   `json:"slug,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a PRD document locally",
	Long: `Validate checks a PRD document without touching the network: the
structural check the publish path runs, plus presence of the configured
required sections.

Exit status is non-zero when the document is invalid, so validate works
as a pre-commit or CI gate.

Examples:
  prdhub validate
  prdhub validate --file specs/checkout.md`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "", "PRD file to validate (default from config)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	file := validateFile
	if file == "" {
		file = cfg.DefaultFile
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading PRD file: %w", err)
	}

	validator := prd.NewSchemaValidator()
	if len(cfg.RequiredSections) > 0 {
		validator.RequiredSections = cfg.RequiredSections
	}
	res := validator.Validate(string(content))

	report := validationReport{Valid: res.Valid, File: file}
	for _, verr := range res.Errors {
		report.Errors = append(report.Errors, verr.Error())
	}
	if name, ok := prd.ExtractProductName(string(content)); ok {
		report.ProductName = name
		report.Slug = naming.Sanitize(name)
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	if err := formatter.FormatReport(report); err != nil {
		return err
	}

	if !res.Valid {
		return fmt.Errorf("document is not a valid PRD")
	}
	return nil
}
