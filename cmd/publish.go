package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prdhub/prdhub/internal/git"
	"github.com/prdhub/prdhub/internal/github"
	"github.com/prdhub/prdhub/internal/log"
	"github.com/prdhub/prdhub/internal/presentation"
	"github.com/prdhub/prdhub/internal/publisher"
	"github.com/prdhub/prdhub/internal/pubsub"
	"github.com/prdhub/prdhub/internal/repoident"
	"github.com/prdhub/prdhub/internal/tracing"
)

var (
	pubFile       string
	pubDomain     string
	pubName       string
	pubOwner      string
	pubSourceRepo string
	pubTags       []string
	pubRepo       string
	pubBase       string
	pubDryRun     bool
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a PRD to the central registry as a pull request",
	Long: `Publish validates the PRD document, computes its registry entry, and
opens a pull request on the central registry repository containing the
document and the updated registry.json.

The product name comes from the '# PRD:' heading unless --name is given.
Re-publishing the same product updates its existing registry entry.

Examples:
  # Publish the default docs/prd.md
  prdhub publish --domain analytics

  # Publish a specific file with metadata
  prdhub publish --domain payments --file specs/checkout.md \
    --owner payments-core --tags checkout,billing

  # Inspect the registry change without touching the remote
  prdhub publish --domain analytics --dry-run`,
	RunE: runPublish,
}

func init() {
	publishCmd.Flags().StringVarP(&pubFile, "file", "f", "", "PRD file to publish (default from config)")
	publishCmd.Flags().StringVarP(&pubDomain, "domain", "d", "", "business domain the product belongs to (required)")
	publishCmd.Flags().StringVar(&pubName, "name", "", "product name override (default: extracted from the document)")
	publishCmd.Flags().StringVar(&pubOwner, "owner", "", "owning team recorded in the registry")
	publishCmd.Flags().StringVar(&pubSourceRepo, "source-repo", "", "source repository URL (default: detected from the local git remote)")
	publishCmd.Flags().StringSliceVar(&pubTags, "tags", nil, "comma-separated tags recorded in the registry")
	publishCmd.Flags().StringVar(&pubRepo, "repo", "", "target registry repository (default from config)")
	publishCmd.Flags().StringVar(&pubBase, "base", "", "base branch of the registry repository (default from config)")
	publishCmd.Flags().BoolVar(&pubDryRun, "dry-run", false, "print the computed change without mutating the remote")
	_ = publishCmd.MarkFlagRequired("domain")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	file := pubFile
	if file == "" {
		file = cfg.DefaultFile
	}
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("PRD file %q not found (pass --file or set default_file)", file)
	}

	token, ok := cfg.Token()
	if !ok {
		return fmt.Errorf("no API token found; set one of: %s", strings.Join(cfg.TokenEnvVars, ", "))
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			log.ErrorErr(log.CatTrace, "trace provider shutdown failed", err)
		}
	}()

	events := pubsub.NewBroker[string]()
	defer events.Close()
	if verboseFlag {
		eventCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			for event := range events.Subscribe(eventCtx) {
				fmt.Fprintf(os.Stderr, "==> %s\n", event.Payload)
			}
		}()
	}

	p := publisher.New(publisher.Options{
		Config: cfg,
		NewClient: func(ref repoident.Ref) github.Client {
			return github.NewRESTClient(ref, token)
		},
		Git:    git.NewRealExecutor("."),
		Tracer: provider.Tracer(),
		Events: events,
	})

	res := p.Publish(ctx, publisher.Request{
		FilePath:    file,
		Domain:      pubDomain,
		ProductName: pubName,
		OwnerTeam:   pubOwner,
		SourceRepo:  pubSourceRepo,
		Tags:        pubTags,
		TargetRepo:  pubRepo,
		BaseBranch:  pubBase,
		DryRun:      pubDryRun,
	})

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	if err := formatter.FormatPublishResult(presentation.FromPublishResult(res)); err != nil {
		return err
	}

	if res.Success && res.DryRun {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprint(cmd.OutOrStdout(), presentation.RegistryDiff(res.RegistryBefore, res.RegistryAfter))
	}

	if !res.Success {
		return fmt.Errorf("publish failed: %s", res.Error)
	}
	return nil
}
