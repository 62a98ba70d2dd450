// Package git reads local repository state via the git CLI.
// The publisher only consults it for best-effort metadata (the origin
// remote URL, the default base branch); it never mutates the local repo.
package git

// Executor defines the local git operations the publisher depends on.
// This abstraction allows for easy testing with mock implementations.
type Executor interface {
	// IsGitRepo reports whether the working directory is inside a git repo.
	IsGitRepo() bool
	// GetRemoteURL returns the URL for the named remote (e.g., "origin").
	// Returns empty string and nil error if the remote doesn't exist.
	GetRemoteURL(name string) (string, error)
}
