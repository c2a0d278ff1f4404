package selectbox

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

// Context is the select state each part renderer reads. It is built once per
// render and passed down explicitly.
type Context struct {
	Value       string
	HasValue    bool
	Open        bool
	Focused     bool
	Highlight   int
	Placeholder string
	Variant     TriggerVariant
	Width       int
}

func render(theme components.Theme, c Context, entries []Entry) string {
	trigger := renderTrigger(theme, c, entries)
	if !c.Open {
		return trigger
	}
	return lipgloss.JoinVertical(lipgloss.Left, trigger, renderContent(theme, c, entries))
}

func renderTrigger(theme components.Theme, c Context, entries []Entry) string {
	shadow := components.NeuFlat
	if c.Open || c.Variant == TriggerPressed {
		shadow = components.NeuPressed
	}
	style := components.Neu(shadow)(components.OnSurface()(lipgloss.NewStyle(), theme), theme).
		Padding(0, 1).
		Width(c.Width - 2)
	if c.Focused {
		style = style.BorderForeground(theme.Palette.Ring)
	}

	chevron := "▾"
	if c.Open {
		chevron = "▴"
	}
	inner := c.Width - 4
	labelWidth := inner - 2
	if labelWidth < 1 {
		labelWidth = 1
	}

	label := theme.Typography.Muted.Render(ansi.Truncate(c.Placeholder, labelWidth, "…"))
	if c.HasValue {
		if text, ok := labelFor(entries, c.Value); ok {
			label = theme.Typography.Body.Render(ansi.Truncate(text, labelWidth, "…"))
		}
	}
	gap := inner - lipgloss.Width(label) - 1
	if gap < 1 {
		gap = 1
	}
	return style.Render(label + strings.Repeat(" ", gap) + chevron)
}

func renderContent(theme components.Theme, c Context, entries []Entry) string {
	rowWidth := c.Width - 2
	rows := make([]string, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, renderEntry(theme, c, e, i, rowWidth))
	}
	style := components.Neu(components.NeuFlat)(components.OnSurface()(lipgloss.NewStyle(), theme), theme).
		Width(rowWidth)
	return style.Render(strings.Join(rows, "\n"))
}

func renderEntry(theme components.Theme, c Context, e Entry, index, width int) string {
	palette := theme.Palette
	switch e.Kind {
	case KindSeparator:
		return components.NewSeparator().WithLength(width).ViewWithContext(components.ContextFor(theme))
	case KindLabel:
		return theme.Typography.Label.Width(width).Padding(0, 1).Render(ansi.Truncate(e.Label, width-2, "…"))
	}

	selected := c.HasValue && e.Value == c.Value
	mark := "  "
	if selected {
		mark = "✓ "
	}
	row := lipgloss.NewStyle().Width(width).Padding(0, 1).
		Background(palette.Surface.Base).
		Foreground(palette.Surface.OnBase)
	switch {
	case e.Disabled:
		row = row.Faint(true)
	case index == c.Highlight:
		row = row.Background(palette.Muted.Base).Foreground(palette.Primary.Base)
	}
	if selected {
		row = row.Bold(true)
	}
	return row.Render(mark + ansi.Truncate(e.text(), width-4, "…"))
}

func labelFor(entries []Entry, value string) (string, bool) {
	for _, e := range entries {
		if e.Kind == KindItem && e.Value == value {
			return e.text(), true
		}
	}
	return "", false
}
