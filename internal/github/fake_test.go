package github

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prdhub/prdhub/internal/repoident"
)

func mustRef(t *testing.T, ref string) repoident.Ref {
	t.Helper()
	r, err := repoident.Parse(ref)
	require.NoError(t, err)
	return r
}

func TestFakeClient_RecordsMutations(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()

	require.Equal(t, 0, fake.MutationCount())

	require.NoError(t, fake.CreateBranch(ctx, "prd/analytics/foo-x", "main"))
	require.NoError(t, fake.CreateOrUpdateFile(ctx, "prds/analytics/foo.md", []byte("# PRD: Foo"), "msg", "prd/analytics/foo-x"))

	pr, err := fake.CreatePullRequest(ctx, "title", "body", "prd/analytics/foo-x", "main")
	require.NoError(t, err)
	require.Equal(t, 7, pr.Number)

	require.Equal(t, 3, fake.MutationCount())
	require.Equal(t, "main", fake.CreatedBranches[0].From)
}

func TestFakeClient_FileRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := NewFakeClient()

	_, found, err := fake.GetFileContent(ctx, "registry.json", "")
	require.NoError(t, err)
	require.False(t, found)

	fake.SetFile("main", "registry.json", []byte(`{"version":"1","items":[]}`))

	content, found, err := fake.GetFileContent(ctx, "registry.json", "")
	require.NoError(t, err)
	require.True(t, found)
	require.JSONEq(t, `{"version":"1","items":[]}`, string(content))
}
