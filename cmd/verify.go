package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prdhub/prdhub/internal/presentation"
)

// accessReport is the JSON shape printed by the verify command.
type accessReport struct {
	Repo     string `json:"repo"`
	HasRead  bool   `json:"has_read"`
	HasWrite bool   `json:"has_write"`
	Error    string `json:"error,omitempty"`
}

var verifyRepo string

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify access to the registry repository",
	Long: `Verify checks that the configured token can read from and write to the
registry repository, without making any changes.

Examples:
  prdhub verify
  prdhub verify --repo acme/prd-registry`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyRepo, "repo", "", "registry repository (default from config)")
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := registryClient(verifyRepo)
	if err != nil {
		return err
	}

	target := verifyRepo
	if target == "" {
		target = cfg.DefaultRepo
	}

	res := client.VerifyAccess(ctx)
	report := accessReport{
		Repo:     target,
		HasRead:  res.HasRead,
		HasWrite: res.HasWrite,
	}
	if res.Err != nil {
		report.Error = res.Err.Error()
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	if err := formatter.FormatReport(report); err != nil {
		return err
	}

	if !res.HasRead || !res.HasWrite {
		return fmt.Errorf("insufficient access to %s", target)
	}
	return nil
}
