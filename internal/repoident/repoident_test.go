package repoident

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_FullURL(t *testing.T) {
	ref, err := Parse("https://github.com/acme/widgets.git")
	require.NoError(t, err)
	require.Equal(t, Ref{Owner: "acme", Name: "widgets"}, ref)
}

func TestParse_URLWithoutSuffix(t *testing.T) {
	ref, err := Parse("https://github.com/acme/widgets")
	require.NoError(t, err)
	require.Equal(t, Ref{Owner: "acme", Name: "widgets"}, ref)
}

func TestParse_Shorthand(t *testing.T) {
	ref, err := Parse("acme/widgets")
	require.NoError(t, err)
	require.Equal(t, Ref{Owner: "acme", Name: "widgets"}, ref)
	require.Equal(t, "acme/widgets", ref.String())
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"not-a-repo-string", "", "a/b/c", "https://example.com/acme/widgets"} {
		_, err := Parse(in)
		require.ErrorIs(t, err, ErrInvalidRepoFormat, "input %q", in)
	}
}

func TestNormalizeRemoteURL_SSH(t *testing.T) {
	url, ok := NormalizeRemoteURL("git@github.com:acme/widgets.git")
	require.True(t, ok)
	require.Equal(t, "https://github.com/acme/widgets", url)
}

func TestNormalizeRemoteURL_HTTPS(t *testing.T) {
	url, ok := NormalizeRemoteURL("https://github.com/acme/widgets.git")
	require.True(t, ok)
	require.Equal(t, "https://github.com/acme/widgets", url)
}

func TestNormalizeRemoteURL_OtherSchemePassesThrough(t *testing.T) {
	url, ok := NormalizeRemoteURL("file:///srv/repos/widgets")
	require.True(t, ok)
	require.Equal(t, "file:///srv/repos/widgets", url)
}

func TestNormalizeRemoteURL_Empty(t *testing.T) {
	_, ok := NormalizeRemoteURL("")
	require.False(t, ok)
}
