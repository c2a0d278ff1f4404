package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/neumorph/internal/tui/showcase"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	neuerrors "github.com/alexisbeaulieu97/neumorph/pkg/errors"
)

func stubShowcase(t *testing.T, err error) **showcase.Model {
	t.Helper()
	original := showcaseRunner
	t.Cleanup(func() { showcaseRunner = original })

	var got *showcase.Model
	showcaseRunner = func(m tea.Model) error {
		got = m.(*showcase.Model)
		return err
	}
	return &got
}

func TestRootLaunchesShowcase(t *testing.T) {
	got := stubShowcase(t, nil)

	_, err := executeCommand(t)
	require.NoError(t, err)
	require.NotNil(t, *got)
	require.Equal(t, components.ModeLight, (*got).Theme().Mode)
	require.Equal(t, 50.0, (*got).Level())
}

func TestShowcaseUsesConfigAndOverrides(t *testing.T) {
	got := stubShowcase(t, nil)
	path := writeConfig(t, `
slider:
  min: 0
  max: 10
  step: 1
  value: 7
select:
  default: banana
`)

	_, err := executeCommand(t, "showcase", "--config", path, "--theme", "dark")
	require.NoError(t, err)
	require.Equal(t, components.ModeDark, (*got).Theme().Mode)
	require.Equal(t, 7.0, (*got).Level())
	require.Equal(t, "banana", (*got).Choice())
}

func TestShowcaseWritesLogFile(t *testing.T) {
	stubShowcase(t, nil)
	logPath := filepath.Join(t.TempDir(), "neumorph.log")

	_, err := executeCommand(t, "showcase", "--log-file", logPath, "--verbose")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "launching showcase")
	require.Contains(t, string(data), "showcase closed")
	require.Contains(t, string(data), "command=showcase")
}

func TestShowcaseErrors(t *testing.T) {
	t.Run("bad theme override", func(t *testing.T) {
		stubShowcase(t, nil)
		_, err := executeCommand(t, "showcase", "--theme", "drak")
		var ve *neuerrors.ValidationError
		require.ErrorAs(t, err, &ve)
		require.Equal(t, "dark", ve.Suggestion)
	})

	t.Run("bad log level", func(t *testing.T) {
		stubShowcase(t, nil)
		_, err := executeCommand(t, "showcase", "--log-level", "loud")
		require.ErrorContains(t, err, "parse log level")
	})

	t.Run("missing config", func(t *testing.T) {
		stubShowcase(t, nil)
		_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("program failure", func(t *testing.T) {
		boom := errors.New("no tty")
		stubShowcase(t, boom)
		_, err := executeCommand(t, "showcase")
		require.ErrorIs(t, err, boom)
		require.ErrorContains(t, err, "run showcase")
	})
}

func TestVerboseOverridesLogLevel(t *testing.T) {
	stubShowcase(t, nil)
	logPath := filepath.Join(t.TempDir(), "neumorph.log")

	_, err := executeCommand(t, "showcase", "--log-file", logPath, "--log-level", "error", "-v")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "--verbose overrides --log-level error")
	require.Contains(t, string(data), "log_level=debug")
}
