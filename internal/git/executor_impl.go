package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/prdhub/prdhub/internal/log"
)

// ErrNotGitRepo indicates the directory is not a git repository.
var ErrNotGitRepo = errors.New("not a git repository")

// Compile-time check that RealExecutor implements Executor.
var _ Executor = (*RealExecutor)(nil)

// RealExecutor implements Executor by executing actual git commands.
type RealExecutor struct {
	workDir string
}

// NewRealExecutor creates a new RealExecutor rooted at workDir.
// An empty workDir uses the process working directory.
func NewRealExecutor(workDir string) *RealExecutor {
	return &RealExecutor{workDir: workDir}
}

// runGit executes a git command and returns an error if it fails.
func (e *RealExecutor) runGit(args ...string) error {
	_, err := e.runGitOutput(args...)
	return err
}

// runGitOutput executes a git command and returns stdout and any error.
func (e *RealExecutor) runGitOutput(args ...string) (string, error) {
	//nolint:gosec // G204: args come from controlled sources
	cmd := exec.Command("git", args...)
	if e.workDir != "" {
		cmd.Dir = e.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if strings.Contains(strings.ToLower(stderrStr), "not a git repository") {
			return "", fmt.Errorf("%w: %s", ErrNotGitRepo, stderrStr)
		}
		if stderrStr != "" {
			return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), stderrStr, err)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// IsGitRepo checks if the working directory is a git repository.
func (e *RealExecutor) IsGitRepo() bool {
	err := e.runGit("rev-parse", "--git-dir")
	return err == nil
}

// GetRemoteURL returns the URL for the named remote.
// A missing remote is not an error - the caller treats the empty string
// as "no auto-detected source repo".
func (e *RealExecutor) GetRemoteURL(name string) (string, error) {
	url, err := e.runGitOutput("remote", "get-url", name)
	if err != nil {
		if errors.Is(err, ErrNotGitRepo) {
			return "", err
		}
		// Remote doesn't exist
		log.Debug(log.CatGit, "remote not configured", "remote", name)
		return "", nil
	}
	return url, nil
}
