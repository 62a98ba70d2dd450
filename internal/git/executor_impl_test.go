package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRealExecutor(t *testing.T) {
	executor := NewRealExecutor("/some/path")
	require.NotNil(t, executor)
	require.Equal(t, "/some/path", executor.workDir)
}

// initRepo creates a throwaway git repo for subprocess tests.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, "git %v: %s", args, out)
	}
	run("init")
	return dir
}

func TestRealExecutor_IsGitRepo(t *testing.T) {
	t.Run("in git repo", func(t *testing.T) {
		dir := initRepo(t)
		require.True(t, NewRealExecutor(dir).IsGitRepo())
	})

	t.Run("not in git repo", func(t *testing.T) {
		dir := t.TempDir()
		// Guard against the temp dir living under a repo
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			t.Skip("unexpected .git in temp dir")
		}
		require.False(t, NewRealExecutor(dir).IsGitRepo())
	})
}

func TestRealExecutor_GetRemoteURL(t *testing.T) {
	dir := initRepo(t)

	t.Run("missing remote is not an error", func(t *testing.T) {
		url, err := NewRealExecutor(dir).GetRemoteURL("origin")
		require.NoError(t, err)
		require.Empty(t, url)
	})

	t.Run("configured remote", func(t *testing.T) {
		cmd := exec.Command("git", "remote", "add", "origin", "git@github.com:acme/widgets.git")
		cmd.Dir = dir
		require.NoError(t, cmd.Run())

		url, err := NewRealExecutor(dir).GetRemoteURL("origin")
		require.NoError(t, err)
		require.Equal(t, "git@github.com:acme/widgets.git", url)
	})
}
