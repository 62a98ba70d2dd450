package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prdhub/prdhub/internal/github"
	"github.com/prdhub/prdhub/internal/log"
	"github.com/prdhub/prdhub/internal/presentation"
	"github.com/prdhub/prdhub/internal/registry"
	"github.com/prdhub/prdhub/internal/repoident"
)

var (
	listDomain string
	listTags   []string
	listRepo   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry entries as JSON",
	Long: `List fetches registry.json from the registry repository and prints its
entries as JSON.

Use --domain to filter by domain.
Use --tag to filter by tags (repeatable, AND logic).

Examples:
  # List all registered PRDs
  prdhub list

  # Filter by domain
  prdhub list --domain analytics

  # Filter by multiple tags (must match ALL)
  prdhub list --tag etl --tag warehouse

  # Parse specific fields with jq
  prdhub list | jq '.[].prd_path'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listDomain, "domain", "d", "", "Filter by domain")
	listCmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Filter by tag (can be repeated)")
	listCmd.Flags().StringVar(&listRepo, "repo", "", "registry repository (default from config)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := registryClient(listRepo)
	if err != nil {
		return err
	}

	raw, found, err := client.GetFileContent(ctx, cfg.RegistryPath, "")
	if err != nil {
		return fmt.Errorf("reading registry: %w", err)
	}
	if !found {
		log.Info(log.CatRegistry, "registry file not found, listing empty index", "path", cfg.RegistryPath)
	}

	reg, recovered := registry.Load(raw)
	if recovered {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: registry.json is unparseable; showing an empty index")
	}

	items := reg.Items
	if listDomain != "" {
		items = filterByDomain(items, listDomain)
	}
	if len(listTags) > 0 {
		items = filterByTags(items, listTags)
	}

	formatter := presentation.NewFormatter(cmd.OutOrStdout())
	return formatter.FormatEntries(presentation.FromEntries(items))
}

// registryClient builds a remote client for the target registry repo,
// honoring the command-level --repo override.
func registryClient(override string) (github.Client, error) {
	target := override
	if target == "" {
		target = cfg.DefaultRepo
	}
	ref, err := repoident.Parse(target)
	if err != nil {
		return nil, err
	}
	token, ok := cfg.Token()
	if !ok {
		return nil, fmt.Errorf("no API token found; set one of: %s", strings.Join(cfg.TokenEnvVars, ", "))
	}
	return github.NewRESTClient(ref, token), nil
}

func filterByDomain(items []registry.Entry, domain string) []registry.Entry {
	result := make([]registry.Entry, 0)
	for _, item := range items {
		if item.Domain == domain {
			result = append(result, item)
		}
	}
	return result
}

// filterByTags keeps entries carrying all the given tags (AND logic)
func filterByTags(items []registry.Entry, tags []string) []registry.Entry {
	result := make([]registry.Entry, 0)
	for _, item := range items {
		if hasAllTags(item.Tags, tags) {
			result = append(result, item)
		}
	}
	return result
}

// hasAllTags checks if entryTags contains all targetTags
func hasAllTags(entryTags, targetTags []string) bool {
	tagSet := make(map[string]bool)
	for _, t := range entryTags {
		tagSet[t] = true
	}
	for _, target := range targetTags {
		if !tagSet[target] {
			return false
		}
	}
	return true
}
