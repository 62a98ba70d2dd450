// Package github is the thin protocol client for the central registry
// repository. The publisher depends only on the Client interface; the
// go-github implementation lives in rest.go and a recording fake for
// tests in fake.go.
package github

import (
	"context"
	"errors"
)

// Typed errors surfaced by the remote API.
var (
	// ErrPermissionDenied indicates the token lacks the required scope.
	ErrPermissionDenied = errors.New("permission denied by remote repository")

	// ErrRepoAccess indicates the repository or base ref is missing or forbidden.
	ErrRepoAccess = errors.New("repository or base ref not accessible")
)

// PullRequest is the result of a successful pull-request creation.
type PullRequest struct {
	Number int
	URL    string
}

// AccessReport is the result of the optional access preflight.
type AccessReport struct {
	HasRead  bool
	HasWrite bool
	Err      error
}

// Client defines the remote repository operations the publisher needs.
type Client interface {
	// GetDefaultBranch returns the repository's default branch name.
	GetDefaultBranch(ctx context.Context) (string, error)

	// GetFileContent fetches a file at path on ref (empty ref = default
	// branch). found is false when the file does not exist; auth/scope
	// failures map to ErrPermissionDenied.
	GetFileContent(ctx context.Context, path, ref string) (content []byte, found bool, err error)

	// CreateBranch creates a branch at fromBranch's current tip.
	// A missing or forbidden base ref maps to ErrRepoAccess.
	CreateBranch(ctx context.Context, name, fromBranch string) error

	// CreateOrUpdateFile writes content to path on branch, looking up any
	// existing blob reference first so updates replace in place.
	CreateOrUpdateFile(ctx context.Context, path string, content []byte, message, branch string) error

	// CreatePullRequest opens a PR from headBranch into baseBranch.
	CreatePullRequest(ctx context.Context, title, body, headBranch, baseBranch string) (PullRequest, error)

	// VerifyAccess is an optional preflight; not required by the publish flow.
	VerifyAccess(ctx context.Context) AccessReport
}
