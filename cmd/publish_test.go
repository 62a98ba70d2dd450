package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prdhub/prdhub/internal/config"
)

func resetPublishFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		cfg = config.Defaults()
		pubFile = ""
		pubDomain = ""
		pubDryRun = false
	})
}

func TestPublishTokenPreflight(t *testing.T) {
	resetPublishFlags(t)
	cfg = config.Defaults()
	cfg.TokenEnvVars = []string{"PRDHUB_TEST_ABSENT_TOKEN"}

	path := filepath.Join(t.TempDir(), "prd.md")
	require.NoError(t, os.WriteFile(path, []byte("# PRD: Foo\n"), 0o644))
	pubFile = path
	pubDomain = "analytics"

	err := runPublish(publishCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no API token")
	require.Contains(t, err.Error(), "PRDHUB_TEST_ABSENT_TOKEN")
}

func TestPublishTokenPreflightAppliesToDryRun(t *testing.T) {
	// Dry run still reads the registry from the remote, so a missing
	// credential must fail up front, not as a confusing API 401.
	resetPublishFlags(t)
	cfg = config.Defaults()
	cfg.TokenEnvVars = []string{"PRDHUB_TEST_ABSENT_TOKEN"}

	path := filepath.Join(t.TempDir(), "prd.md")
	require.NoError(t, os.WriteFile(path, []byte("# PRD: Foo\n"), 0o644))
	pubFile = path
	pubDomain = "analytics"
	pubDryRun = true

	err := runPublish(publishCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no API token")
}

func TestPublishMissingFilePreflight(t *testing.T) {
	resetPublishFlags(t)
	cfg = config.Defaults()

	pubFile = filepath.Join(t.TempDir(), "absent.md")
	pubDomain = "analytics"

	err := runPublish(publishCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}
