package github

import (
	"context"
)

// Compile-time check that FakeClient implements Client.
var _ Client = (*FakeClient)(nil)

// FakeClient is a recording test double. Reads are served from Files;
// every mutation is appended to the call logs so tests can assert both
// what happened and that nothing happened (dry-run).
type FakeClient struct {
	DefaultBranch string
	// Files maps "ref:path" to content served by GetFileContent.
	Files map[string][]byte

	// Error injection, keyed by operation name.
	Errs map[string]error

	// Recorded mutations.
	CreatedBranches []BranchCall
	WrittenFiles    []FileCall
	CreatedPRs      []PRCall

	// NextPR is returned by CreatePullRequest.
	NextPR PullRequest
}

type BranchCall struct {
	Name string
	From string
}

type FileCall struct {
	Path    string
	Content []byte
	Message string
	Branch  string
}

type PRCall struct {
	Title string
	Body  string
	Head  string
	Base  string
}

// NewFakeClient returns a fake with an empty repository on branch "main".
func NewFakeClient() *FakeClient {
	return &FakeClient{
		DefaultBranch: "main",
		Files:         map[string][]byte{},
		Errs:          map[string]error{},
		NextPR:        PullRequest{Number: 7, URL: "https://github.com/acme/prd-registry/pull/7"},
	}
}

// SetFile seeds a file at ref:path.
func (f *FakeClient) SetFile(ref, path string, content []byte) {
	f.Files[ref+":"+path] = content
}

// MutationCount returns how many remote writes were performed.
func (f *FakeClient) MutationCount() int {
	return len(f.CreatedBranches) + len(f.WrittenFiles) + len(f.CreatedPRs)
}

func (f *FakeClient) GetDefaultBranch(ctx context.Context) (string, error) {
	if err := f.Errs["default_branch"]; err != nil {
		return "", err
	}
	return f.DefaultBranch, nil
}

func (f *FakeClient) GetFileContent(ctx context.Context, path, ref string) ([]byte, bool, error) {
	if err := f.Errs["get_file"]; err != nil {
		return nil, false, err
	}
	if ref == "" {
		ref = f.DefaultBranch
	}
	content, ok := f.Files[ref+":"+path]
	return content, ok, nil
}

func (f *FakeClient) CreateBranch(ctx context.Context, name, fromBranch string) error {
	if err := f.Errs["create_branch"]; err != nil {
		return err
	}
	f.CreatedBranches = append(f.CreatedBranches, BranchCall{Name: name, From: fromBranch})
	return nil
}

func (f *FakeClient) CreateOrUpdateFile(ctx context.Context, path string, content []byte, message, branch string) error {
	if err := f.Errs["write_file"]; err != nil {
		return err
	}
	f.WrittenFiles = append(f.WrittenFiles, FileCall{Path: path, Content: content, Message: message, Branch: branch})
	f.SetFile(branch, path, content)
	return nil
}

func (f *FakeClient) CreatePullRequest(ctx context.Context, title, body, headBranch, baseBranch string) (PullRequest, error) {
	if err := f.Errs["create_pr"]; err != nil {
		return PullRequest{}, err
	}
	f.CreatedPRs = append(f.CreatedPRs, PRCall{Title: title, Body: body, Head: headBranch, Base: baseBranch})
	return f.NextPR, nil
}

func (f *FakeClient) VerifyAccess(ctx context.Context) AccessReport {
	if err := f.Errs["verify"]; err != nil {
		return AccessReport{Err: err}
	}
	return AccessReport{HasRead: true, HasWrite: true}
}
