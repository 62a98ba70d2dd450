package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSaveValue_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SaveValue(path, "default_repo", "acme/prd-registry"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "acme/prd-registry", parsed["default_repo"])
}

func TestSaveValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	existing := "# my registry setup\ndefault_repo: old/repo\nbase_branch: main\n"
	require.NoError(t, os.WriteFile(path, []byte(existing), 0o600))

	require.NoError(t, SaveValue(path, "default_repo", "new/repo"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# my registry setup")
	require.Contains(t, string(data), "new/repo")
	require.Contains(t, string(data), "base_branch: main")
	require.NotContains(t, string(data), "old/repo")
}

func TestSaveValue_AppendsMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_branch: main\n"), 0o600))

	require.NoError(t, SaveValue(path, "registry_path", "index/registry.json"))

	var parsed map[string]string
	data, _ := os.ReadFile(path)
	require.NoError(t, yaml.Unmarshal(data, &parsed))
	require.Equal(t, "index/registry.json", parsed["registry_path"])
	require.Equal(t, "main", parsed["base_branch"])
}

func TestSaveValue_RejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	err := SaveValue(path, "token_env_vars", "nope")
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-scalar")
}
