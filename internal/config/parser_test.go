package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/selectbox"
	neuerrors "github.com/alexisbeaulieu97/neumorph/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, ValidateConfig(&cfg))

	cfg, err = Load(writeTempConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseMergesOverDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`theme:
  mode: dark
  primary: "#ff5500"
slider:
  max: 50
  step: 5
  value: 10
select:
  default: cherry
  options:
    - value: apple
    - value: cherry
      label: Cherry
`), "showcase.yaml")
	require.NoError(t, err)

	require.Equal(t, "dark", cfg.Theme.Mode)
	require.Equal(t, Default().Theme.Shadow, cfg.Theme.Shadow)
	require.Equal(t, SliderConfig{Min: 0, Max: 50, Step: 5, Value: 10}, cfg.Slider)
	require.Equal(t, "Pick a fruit", cfg.Select.Placeholder)
	require.Len(t, cfg.Select.Options, 2)

	theme := cfg.BuildTheme()
	require.Equal(t, components.ModeDark, theme.Mode)
	require.Equal(t, "#ff5500", string(theme.Palette.Primary.Base))

	require.Equal(t, []selectbox.Entry{
		selectbox.Item("apple", ""),
		selectbox.Item("cherry", "Cherry"),
	}, cfg.SelectEntries())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		contents string
		line     int
		contains string
	}{
		{name: "wrong type", contents: "slider:\n  max: [1, 2]\n", line: 2, contains: "cannot unmarshal"},
		{name: "unknown key", contents: "theme:\n  colour: red\n", line: 2, contains: "colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeTempConfig(t, tt.contents))
			var parseErr *neuerrors.ParseError
			require.ErrorAs(t, err, &parseErr)
			require.Equal(t, tt.line, parseErr.Line)
			require.Contains(t, parseErr.Message, tt.contains)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "absent.yaml")
	_, err := Load(path)

	var parseErr *neuerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		contents   string
		field      string
		suggestion string
	}{
		{name: "typo in mode", contents: "theme:\n  mode: drak\n", field: "theme.mode", suggestion: "dark"},
		{name: "nonsense mode", contents: "theme:\n  mode: purple\n", field: "theme.mode"},
		{name: "bad accent", contents: "theme:\n  primary: blue\n", field: "theme.primary"},
		{name: "intensity too high", contents: "theme:\n  shadow:\n    intensity: 3\n", field: "theme.shadow.intensity"},
		{name: "zero step", contents: "slider:\n  step: 0\n", field: "slider.step"},
		{name: "negative step", contents: "slider:\n  step: -1\n", field: "slider.step"},
		{name: "max not above min", contents: "slider:\n  min: 10\n  max: 10\n  value: 10\n", field: "slider.max"},
		{name: "value outside range", contents: "slider:\n  value: 120\n", field: "slider.value"},
		{name: "option without value", contents: "select:\n  options:\n    - label: Nameless\n", field: "select.options[0].value"},
		{
			name:     "duplicate option",
			contents: "select:\n  options:\n    - value: kiwi\n    - value: kiwi\n",
			field:    "select.options[1].value",
		},
		{
			name:       "unknown default",
			contents:   "select:\n  default: chery\n  options:\n    - value: apple\n    - value: cherry\n",
			field:      "select.default",
			suggestion: "cherry",
		},
		{
			name:     "disabled default",
			contents: "select:\n  default: kiwi\n  options:\n    - value: kiwi\n      disabled: true\n",
			field:    "select.default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.contents), "test.yaml")
			var validationErr *neuerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
			require.Equal(t, tt.suggestion, validationErr.Suggestion)
		})
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()

	var validationErr *neuerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}

func TestDefaultSelectEntries(t *testing.T) {
	t.Parallel()

	entries := Default().SelectEntries()
	kinds := make([]selectbox.EntryKind, 0, len(entries))
	for _, e := range entries {
		kinds = append(kinds, e.Kind)
	}
	require.Equal(t, []selectbox.EntryKind{
		selectbox.KindLabel,
		selectbox.KindItem, selectbox.KindItem, selectbox.KindItem, selectbox.KindItem,
		selectbox.KindSeparator,
		selectbox.KindLabel,
		selectbox.KindItem, selectbox.KindItem, selectbox.KindItem,
	}, kinds)
	require.True(t, entries[4].Disabled)
	require.Equal(t, "Vegetables", entries[6].Label)
}

func TestClosest(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dark", closest("Dakr", themeModes))
	require.Equal(t, "light", closest("lihgt", themeModes))
	require.Empty(t, closest("", themeModes))
	require.Empty(t, closest("fuchsia", themeModes))
}

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "showcase.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}
