package prd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractProductName_PRDPrefix(t *testing.T) {
	name, ok := ExtractProductName("# PRD: Device 360\n\nbody")
	require.True(t, ok)
	require.Equal(t, "Device 360", name)
}

func TestExtractProductName_PlainHeadingFallback(t *testing.T) {
	name, ok := ExtractProductName("# Device 360\n\nbody")
	require.True(t, ok)
	require.Equal(t, "Device 360", name)
}

func TestExtractProductName_NoHeading(t *testing.T) {
	_, ok := ExtractProductName("\n\nno heading")
	require.False(t, ok)
}

func TestExtractProductName_StripsLeadingComment(t *testing.T) {
	doc := "<!-- generated from template, do not hand-edit -->\n# PRD: Orders Feed\n\nbody"
	name, ok := ExtractProductName(doc)
	require.True(t, ok)
	require.Equal(t, "Orders Feed", name)
}

func TestExtractProductName_PrefersPRDHeadingOverEarlierPlain(t *testing.T) {
	// A plain heading before the PRD heading must not win
	doc := "# Changelog\n\n# PRD: Orders Feed\n"
	name, ok := ExtractProductName(doc)
	require.True(t, ok)
	require.Equal(t, "Orders Feed", name)
}

func TestExtractProductName_TrimsName(t *testing.T) {
	name, ok := ExtractProductName("# PRD:    Spaced Out   \nbody")
	require.True(t, ok)
	require.Equal(t, "Spaced Out", name)
}
