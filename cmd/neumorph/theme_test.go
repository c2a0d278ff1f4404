package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	neuerrors "github.com/alexisbeaulieu97/neumorph/pkg/errors"
)

func TestThemeValidateAcceptsFile(t *testing.T) {
	path := writeConfig(t, `
theme:
  mode: dark
slider:
  min: 0
  max: 10
  step: 2
  value: 4
select:
  options:
    - value: tea
    - value: coffee
      disabled: true
`)

	out, err := executeCommand(t, "theme", "validate", path, "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, path+" is valid")
	require.Contains(t, out, "theme:  dark")
	require.Contains(t, out, "slider: 0..10 step 2 (starts at 4)")
	require.Contains(t, out, "select: 2 options, 1 enabled")
	require.Contains(t, out, "- coffee")
}

func TestThemeValidateReportsProblems(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		check    func(t *testing.T, err error)
	}{
		{
			name:     "typo in mode",
			contents: "theme:\n  mode: drak\n",
			check: func(t *testing.T, err error) {
				var ve *neuerrors.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Equal(t, "theme.mode", ve.Field)
				require.Equal(t, "dark", ve.Suggestion)
			},
		},
		{
			name:     "unknown key",
			contents: "theme:\n  colour: red\n",
			check: func(t *testing.T, err error) {
				var pe *neuerrors.ParseError
				require.ErrorAs(t, err, &pe)
				require.Equal(t, 2, pe.Line)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeCommand(t, "theme", "validate", writeConfig(t, tt.contents))
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestThemeValidateNeedsFile(t *testing.T) {
	_, err := executeCommand(t, "theme", "validate")
	require.Error(t, err)
}
