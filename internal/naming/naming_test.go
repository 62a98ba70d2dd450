package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9-]*$`)

func TestSanitize_Basic(t *testing.T) {
	require.Equal(t, "device-360", Sanitize("Device 360"))
	require.Equal(t, "test-data-product", Sanitize("Test Data Product"))
	require.Equal(t, "a-b-c", Sanitize("A--B__C"))
}

func TestSanitize_EmptyFallsBack(t *testing.T) {
	require.Equal(t, FallbackSlug, Sanitize(""))
	require.Equal(t, FallbackSlug, Sanitize("!!!"))
	require.Equal(t, FallbackSlug, Sanitize("   "))
}

func TestSanitize_StripsEdgeHyphens(t *testing.T) {
	require.Equal(t, "widgets", Sanitize("--widgets--"))
	require.Equal(t, "widgets", Sanitize(" (widgets) "))
}

func TestSanitize_Truncates(t *testing.T) {
	long := strings.Repeat("a", 150)
	slug := Sanitize(long)
	require.Len(t, slug, 100)

	// Truncation must not leave a trailing hyphen
	long = strings.Repeat("abc-", 30) // cut lands exactly on a hyphen
	slug = Sanitize(long)
	require.Equal(t, 99, len(slug))
	require.False(t, strings.HasSuffix(slug, "-"), "truncated slug ends with hyphen: %q", slug)
}

func TestSanitize_PropertyWellFormed(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.String().Draw(rt, "name")

		slug := Sanitize(name)

		require.LessOrEqual(t, len(slug), 100)
		require.True(t, slugPattern.MatchString(slug), "slug %q has invalid characters", slug)
		require.False(t, strings.HasPrefix(slug, "-"), "slug %q has leading hyphen", slug)
		require.False(t, strings.HasSuffix(slug, "-"), "slug %q has trailing hyphen", slug)
		require.NotContains(t, slug, "--", "slug %q has doubled hyphen", slug)
		require.NotEmpty(t, slug)
	})
}

func TestSanitize_PropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		name := rapid.String().Draw(rt, "name")

		once := Sanitize(name)
		twice := Sanitize(once)

		require.Equal(t, once, twice, "Sanitize not idempotent for %q", name)
	})
}
