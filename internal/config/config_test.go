package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prdhub/prdhub/internal/tracing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	require.Equal(t, "prdhub/prd-registry", cfg.DefaultRepo)
	require.Equal(t, "main", cfg.BaseBranch)
	require.Equal(t, "registry.json", cfg.RegistryPath)
	require.Equal(t, []string{"PRDHUB_TOKEN", "GITHUB_TOKEN"}, cfg.TokenEnvVars)
	require.NoError(t, Validate(cfg))
}

func TestValidate_BadRepo(t *testing.T) {
	cfg := Defaults()
	cfg.DefaultRepo = "not a repo"
	require.Error(t, Validate(cfg))
}

func TestValidate_EmptyBaseBranchAllowed(t *testing.T) {
	// Empty means "use the repository's default branch"
	cfg := Defaults()
	cfg.BaseBranch = ""
	require.NoError(t, Validate(cfg))
}

func TestValidateTracing_SampleRateRange(t *testing.T) {
	tc := tracing.DefaultConfig()
	tc.SampleRate = 1.5
	err := ValidateTracing(tc)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sample_rate")
}

func TestValidateTracing_FilePathRequired(t *testing.T) {
	tc := tracing.DefaultConfig()
	tc.Enabled = true
	tc.Exporter = "file"
	tc.FilePath = ""
	require.Error(t, ValidateTracing(tc))

	tc.FilePath = "/tmp/traces.jsonl"
	require.NoError(t, ValidateTracing(tc))
}

func TestToken(t *testing.T) {
	cfg := Defaults()
	cfg.TokenEnvVars = []string{"PRDHUB_TEST_TOKEN_A", "PRDHUB_TEST_TOKEN_B"}

	_, ok := cfg.Token()
	require.False(t, ok)

	t.Setenv("PRDHUB_TEST_TOKEN_B", "secret-b")
	token, ok := cfg.Token()
	require.True(t, ok)
	require.Equal(t, "secret-b", token)

	// First configured variable wins
	t.Setenv("PRDHUB_TEST_TOKEN_A", "secret-a")
	token, _ = cfg.Token()
	require.Equal(t, "secret-a", token)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "default_repo: prdhub/prd-registry")
	require.Contains(t, string(data), "token_env_vars:")
}
