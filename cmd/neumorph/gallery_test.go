package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func stubTerminalWidth(t *testing.T, width int, ok bool) {
	t.Helper()
	original := terminalWidth
	t.Cleanup(func() { terminalWidth = original })
	terminalWidth = func() (int, bool) { return width, ok }
}

func TestGalleryRendersEverySection(t *testing.T) {
	stubTerminalWidth(t, 0, false)

	out, err := executeCommand(t, "gallery", "--theme", "dark")
	require.NoError(t, err)

	plain := ansi.Strip(out)
	for _, title := range []string{"Buttons", "Badges", "Cards", "Typography", "Sidebar", "Forms", "File upload", "Shadows"} {
		require.Contains(t, plain, title)
	}
	require.Contains(t, plain, strings.Repeat("─", defaultGalleryWidth))
}

func TestGalleryWidth(t *testing.T) {
	stubTerminalWidth(t, 120, true)

	out, err := executeCommand(t, "gallery")
	require.NoError(t, err)
	require.Contains(t, ansi.Strip(out), strings.Repeat("─", 120))

	out, err = executeCommand(t, "gallery", "--width", "60")
	require.NoError(t, err)
	require.NotContains(t, ansi.Strip(out), strings.Repeat("─", 61))

	_, err = executeCommand(t, "gallery", "--width", "0")
	require.ErrorContains(t, err, "width must be positive")
}
