package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RadioOption is one choice in a RadioGroup.
type RadioOption struct {
	Value    string
	Label    string
	Disabled bool
}

// RadioGroup is a single-choice list. The cursor marks the focused option;
// Choose commits it.
type RadioGroup struct {
	BaseComponent
	options     []RadioOption
	value       string
	cursor      int
	focused     bool
	orientation Orientation
}

// NewRadioGroup creates a vertical group with nothing chosen.
func NewRadioGroup(options ...RadioOption) *RadioGroup {
	g := &RadioGroup{
		BaseComponent: NewBaseComponent(),
		options:       options,
		orientation:   Vertical,
	}
	g.cursor = g.step(-1, 1)
	return g
}

// View renders with the default theme.
func (g *RadioGroup) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every option.
func (g *RadioGroup) ViewWithContext(ctx RenderContext) string {
	items := make([]string, 0, len(g.options))
	for i, opt := range g.options {
		focused := g.focused && i == g.cursor
		item := indicator(ctx.Theme, opt.Value == g.value, focused, "(", ")", "●") +
			" " + ctx.Theme.Typography.Body.Render(opt.Label)
		if opt.Disabled {
			item = lipgloss.NewStyle().Faint(true).Render(item)
		}
		items = append(items, item)
	}

	var out string
	if g.orientation == Horizontal {
		spaced := make([]string, 0, len(items)*2)
		for i, item := range items {
			if i > 0 {
				spaced = append(spaced, "   ")
			}
			spaced = append(spaced, item)
		}
		out = lipgloss.JoinHorizontal(lipgloss.Top, spaced...)
	} else {
		out = lipgloss.JoinVertical(lipgloss.Left, items...)
	}
	return g.ComputeStyle(ctx.Theme).Render(out)
}

// step returns the next enabled index after from in direction dir, or from
// when there is none.
func (g *RadioGroup) step(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(g.options); i += dir {
		if !g.options[i].Disabled {
			return i
		}
	}
	return from
}

// Next moves the cursor to the next enabled option.
func (g *RadioGroup) Next() {
	g.cursor = g.step(g.cursor, 1)
}

// Prev moves the cursor to the previous enabled option.
func (g *RadioGroup) Prev() {
	g.cursor = g.step(g.cursor, -1)
}

// Choose selects the option under the cursor and reports whether the value
// changed.
func (g *RadioGroup) Choose() bool {
	if g.cursor < 0 || g.cursor >= len(g.options) {
		return false
	}
	return g.Select(g.options[g.cursor].Value)
}

// Select chooses value if it names an enabled option and reports whether the
// value changed.
func (g *RadioGroup) Select(value string) bool {
	for i, opt := range g.options {
		if opt.Value != value || opt.Disabled {
			continue
		}
		g.cursor = i
		if g.value == value {
			return false
		}
		g.value = value
		return true
	}
	return false
}

// Value returns the chosen value, or "".
func (g *RadioGroup) Value() string {
	return g.value
}

// WithOrientation lays options out in a row or column.
func (g *RadioGroup) WithOrientation(o Orientation) *RadioGroup {
	g.orientation = o
	return g
}

// SetFocused marks the group as focused.
func (g *RadioGroup) SetFocused(focused bool) {
	g.focused = focused
}

// Role is "radiogroup".
func (g *RadioGroup) Role() string {
	return "radiogroup"
}
