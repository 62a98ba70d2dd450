package prd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const completeDoc = `# PRD: Device 360

## Overview
What it is.

## Goals
Why it exists.

## Requirements
What it must do.
`

func TestSchemaValidator_Complete(t *testing.T) {
	res := NewSchemaValidator().Validate(completeDoc)
	require.True(t, res.Valid)
}

func TestSchemaValidator_MissingSections(t *testing.T) {
	res := NewSchemaValidator().Validate("# PRD: Device 360\n\n## Overview\nonly this\n")
	require.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	require.Contains(t, res.Errors[0].Error(), "Goals")
	require.Contains(t, res.Errors[1].Error(), "Requirements")
}

func TestSchemaValidator_StructuralFailureShortCircuits(t *testing.T) {
	res := NewSchemaValidator().Validate("")
	require.False(t, res.Valid)
	require.ErrorIs(t, res.Err(), ErrEmptyDocument)
}

func TestSchemaValidator_CustomSections(t *testing.T) {
	v := &SchemaValidator{RequiredSections: []string{"Data Sources"}}
	res := v.Validate("# PRD: X\n\n## Data Sources\ns3://bucket\n")
	require.True(t, res.Valid)
}
