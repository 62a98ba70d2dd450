package prd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_Empty(t *testing.T) {
	res := Validate("")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrEmptyDocument)

	res = Validate("   \n\t\n")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrEmptyDocument)
}

func TestValidate_MissingTitle(t *testing.T) {
	res := Validate("no heading here")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrMissingTitle)
}

func TestValidate_TitleNotFirstLine(t *testing.T) {
	res := Validate("<!-- template -->\n# PRD: Device 360\n\nbody")
	require.True(t, res.Valid)
	require.NoError(t, res.Err())
}

func TestValidate_Valid(t *testing.T) {
	res := Validate("# PRD: X\nbody")
	require.True(t, res.Valid)
	require.Empty(t, res.Errors)
}

func TestValidate_CaseSensitivePrefix(t *testing.T) {
	// The literal "PRD:" is case-sensitive
	res := Validate("# prd: X\nbody")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrMissingTitle)
}

func TestValidate_PlainHeadingIsNotTitle(t *testing.T) {
	res := Validate("# Device 360\n\nbody")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrMissingTitle)
}
