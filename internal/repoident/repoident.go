// Package repoident resolves repository identifiers and normalizes
// locally-configured remote URLs.
package repoident

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidRepoFormat indicates a repository reference that is neither a
// github.com URL nor an owner/repo shorthand.
var ErrInvalidRepoFormat = errors.New("invalid repository format, expected a github.com URL or owner/repo")

// Ref identifies a repository on the hosting platform.
type Ref struct {
	Owner string
	Name  string
}

// String returns the owner/name shorthand.
func (r Ref) String() string {
	return r.Owner + "/" + r.Name
}

var (
	urlRef   = regexp.MustCompile(`github\.com/([^/]+)/([^/\s]+)`)
	shortRef = regexp.MustCompile(`^([A-Za-z0-9_.-]+)/([A-Za-z0-9_.-]+)$`)
	sshRef   = regexp.MustCompile(`^git@([^:]+):([^/]+)/(.+)$`)
)

// Parse accepts a full URL containing github.com/{owner}/{repo} (with an
// optional trailing .git) or a bare owner/repo shorthand.
func Parse(ref string) (Ref, error) {
	ref = strings.TrimSpace(ref)

	if strings.Contains(ref, "github.com/") {
		if m := urlRef.FindStringSubmatch(ref); m != nil {
			return Ref{Owner: m[1], Name: strings.TrimSuffix(m[2], ".git")}, nil
		}
		return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRepoFormat, ref)
	}

	if m := shortRef.FindStringSubmatch(ref); m != nil {
		return Ref{Owner: m[1], Name: strings.TrimSuffix(m[2], ".git")}, nil
	}

	return Ref{}, fmt.Errorf("%w: %q", ErrInvalidRepoFormat, ref)
}

// NormalizeRemoteURL converts a locally-configured git remote into a
// canonical https URL: ssh remotes become https, the .git suffix is
// stripped, and unrecognized schemes pass through unchanged. Returns
// false when raw is empty. Best effort only - used to auto-populate
// source_repo metadata, never to block a publish.
func NormalizeRemoteURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if m := sshRef.FindStringSubmatch(raw); m != nil {
		repo := strings.TrimSuffix(m[3], ".git")
		return fmt.Sprintf("https://%s/%s/%s", m[1], m[2], repo), true
	}

	if strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "http://") {
		return strings.TrimSuffix(raw, ".git"), true
	}

	return raw, true
}
