package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/prdhub/prdhub/internal/cachemanager"
	"github.com/prdhub/prdhub/internal/log"
	"github.com/prdhub/prdhub/internal/repoident"
)

// branchCacheTTL bounds how long a default-branch lookup is reused.
// Registry content is never cached - only repo metadata.
const branchCacheTTL = 5 * time.Minute

// Compile-time check that RESTClient implements Client.
var _ Client = (*RESTClient)(nil)

// RESTClient implements Client against the GitHub REST API.
type RESTClient struct {
	repo          repoident.Ref
	gh            *gogithub.Client
	defaultBranch *cachemanager.ReadThroughCache[string, string, repoident.Ref]
}

// NewRESTClient creates a client for the given repository using token auth.
func NewRESTClient(repo repoident.Ref, token string) *RESTClient {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(context.Background(), ts)
	return newRESTClient(repo, gogithub.NewClient(httpClient))
}

func newRESTClient(repo repoident.Ref, gh *gogithub.Client) *RESTClient {
	c := &RESTClient{repo: repo, gh: gh}

	branchCache := cachemanager.NewInMemoryCacheManager[string, string](
		"default_branch", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	c.defaultBranch = cachemanager.NewReadThroughCache(
		cachemanager.CacheManager[string, string](branchCache),
		c.fetchDefaultBranch,
		false,
	)

	return c
}

// GetDefaultBranch returns the repository's default branch, cached briefly.
func (c *RESTClient) GetDefaultBranch(ctx context.Context) (string, error) {
	return c.defaultBranch.Get(ctx, "branch:"+c.repo.String(), c.repo, branchCacheTTL)
}

func (c *RESTClient) fetchDefaultBranch(ctx context.Context, repo repoident.Ref) (string, error) {
	r, _, err := c.gh.Repositories.Get(ctx, repo.Owner, repo.Name)
	if err != nil {
		return "", mapAPIError("get repository", err)
	}
	log.Debug(log.CatGitHub, "resolved default branch", "repo", repo.String(), "branch", r.GetDefaultBranch())
	return r.GetDefaultBranch(), nil
}

// GetFileContent fetches a file's decoded content at path on ref.
func (c *RESTClient) GetFileContent(ctx context.Context, path, ref string) ([]byte, bool, error) {
	opts := &gogithub.RepositoryContentGetOptions{Ref: ref}
	file, _, resp, err := c.gh.Repositories.GetContents(ctx, c.repo.Owner, c.repo.Name, path, opts)
	if err != nil {
		if statusOf(err, resp) == http.StatusNotFound {
			return nil, false, nil
		}
		return nil, false, mapAPIError("get file content", err)
	}
	if file == nil {
		// Path is a directory
		return nil, false, fmt.Errorf("get file content: %q is not a file", path)
	}

	decoded, err := file.GetContent()
	if err != nil {
		return nil, false, fmt.Errorf("decode file content: %w", err)
	}
	return []byte(decoded), true, nil
}

// CreateBranch creates a branch at fromBranch's current tip.
func (c *RESTClient) CreateBranch(ctx context.Context, name, fromBranch string) error {
	baseRef, resp, err := c.gh.Git.GetRef(ctx, c.repo.Owner, c.repo.Name, "refs/heads/"+fromBranch)
	if err != nil {
		if code := statusOf(err, resp); code == http.StatusNotFound || code == http.StatusForbidden {
			return fmt.Errorf("%w: base branch %q: %v", ErrRepoAccess, fromBranch, err)
		}
		return mapAPIError("get base ref", err)
	}

	newRef := &gogithub.Reference{
		Ref:    gogithub.String("refs/heads/" + name),
		Object: &gogithub.GitObject{SHA: baseRef.Object.SHA},
	}
	if _, _, err := c.gh.Git.CreateRef(ctx, c.repo.Owner, c.repo.Name, newRef); err != nil {
		return mapAPIError("create branch", err)
	}

	log.Info(log.CatGitHub, "branch created", "branch", name, "from", fromBranch)
	return nil
}

// CreateOrUpdateFile writes content to path on branch. It looks up the
// existing blob SHA first so an existing file is updated in place.
func (c *RESTClient) CreateOrUpdateFile(ctx context.Context, path string, content []byte, message, branch string) error {
	opts := &gogithub.RepositoryContentFileOptions{
		Message: gogithub.String(message),
		Content: content,
		Branch:  gogithub.String(branch),
	}

	existing, _, resp, err := c.gh.Repositories.GetContents(ctx, c.repo.Owner, c.repo.Name, path,
		&gogithub.RepositoryContentGetOptions{Ref: branch})
	switch {
	case err == nil && existing != nil:
		opts.SHA = existing.SHA
	case err != nil && statusOf(err, resp) != http.StatusNotFound:
		return mapAPIError("lookup existing file", err)
	}

	if opts.SHA != nil {
		_, _, err = c.gh.Repositories.UpdateFile(ctx, c.repo.Owner, c.repo.Name, path, opts)
	} else {
		_, _, err = c.gh.Repositories.CreateFile(ctx, c.repo.Owner, c.repo.Name, path, opts)
	}
	if err != nil {
		return mapAPIError("write file", err)
	}

	log.Info(log.CatGitHub, "file written", "path", path, "branch", branch, "update", opts.SHA != nil)
	return nil
}

// CreatePullRequest opens a PR from headBranch into baseBranch.
func (c *RESTClient) CreatePullRequest(ctx context.Context, title, body, headBranch, baseBranch string) (PullRequest, error) {
	pr, _, err := c.gh.PullRequests.Create(ctx, c.repo.Owner, c.repo.Name, &gogithub.NewPullRequest{
		Title: gogithub.String(title),
		Body:  gogithub.String(body),
		Head:  gogithub.String(headBranch),
		Base:  gogithub.String(baseBranch),
	})
	if err != nil {
		return PullRequest{}, mapAPIError("create pull request", err)
	}

	log.Info(log.CatGitHub, "pull request created", "number", pr.GetNumber(), "url", pr.GetHTMLURL())
	return PullRequest{Number: pr.GetNumber(), URL: pr.GetHTMLURL()}, nil
}

// VerifyAccess checks read and write permission on the repository.
func (c *RESTClient) VerifyAccess(ctx context.Context) AccessReport {
	r, _, err := c.gh.Repositories.Get(ctx, c.repo.Owner, c.repo.Name)
	if err != nil {
		return AccessReport{Err: mapAPIError("get repository", err)}
	}

	perms := r.GetPermissions()
	return AccessReport{
		HasRead:  true,
		HasWrite: perms["push"],
	}
}

// statusOf extracts the HTTP status from an API error.
func statusOf(err error, resp *gogithub.Response) int {
	var apiErr *gogithub.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return apiErr.Response.StatusCode
	}
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	return 0
}

// mapAPIError converts go-github errors into the package's typed errors.
// Auth and scope failures become ErrPermissionDenied; everything else is
// wrapped with the failing operation and propagated unmodified in content.
func mapAPIError(op string, err error) error {
	var apiErr *gogithub.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		switch apiErr.Response.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrPermissionDenied, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
