package showcase

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/neumorph/internal/config"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

func TestViewFillsScreen(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 40)
	require.Contains(t, lines[0], "neumorph")
	require.Contains(t, lines[controlsY-1], "Select · none")
	require.Contains(t, lines[controlsY-1], "Slider · 50")
	require.Contains(t, lines[controlsY+1], "Pick a fruit")
}

func TestViewDrawsOpenPanelOverContent(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	press(m, triggerX, triggerY)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Contains(t, lines[8], "Fruits")
	require.Contains(t, lines[bananaY], "Banana")
	require.Contains(t, lines[formsY], "Banana", "the panel covers the input field")
	require.Contains(t, lines[formsY], "Notifications", "cells right of the panel survive")
}

func TestViewTooSmall(t *testing.T) {
	t.Parallel()

	m := New(Options{Config: config.Default(), Clipboard: func(string) error { return nil }})
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	require.Equal(t, "Terminal too small (40x10). Minimum size: 68x24", m.View())
}

func TestViewAfterQuitIsEmpty(t *testing.T) {
	t.Parallel()

	m, _ := newModel(t)
	runes(m, "q")
	require.Empty(t, m.View())
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		base  []string
		block string
		x, y  int
		want  []string
	}{
		{name: "inside", base: []string{"abcdef"}, block: "XY", x: 2, want: []string{"abXYef"}},
		{name: "past the end", base: []string{"ab"}, block: "Z", x: 4, want: []string{"ab  Z"}},
		{name: "grows", base: []string{"ab"}, block: "1\n2", x: 1, y: 1, want: []string{"ab", " 1", " 2"}},
		{name: "covers", base: []string{"abc"}, block: "WXYZ", x: 1, want: []string{"aWXYZ"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, overlay(append([]string(nil), tt.base...), tt.block, tt.x, tt.y))
		})
	}
}

func TestGallery(t *testing.T) {
	t.Parallel()

	g := NewGallery()
	require.NotNil(t, g.Init())
	require.Nil(t, g.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	out := ansi.Strip(g.Render(components.ContextFor(components.DarkTheme()), 100))
	for _, s := range g.Sections() {
		require.Contains(t, out, s.Title)
	}
	require.Contains(t, out, "Primary")
	require.Contains(t, out, "deprecated")
	require.Contains(t, out, "pressed")
	require.Contains(t, out, "Username is taken")
	require.Contains(t, out, "File size must be less than 5.0MB")
	require.Contains(t, out, "2.3 MB")
}
