package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Checkbox is a labelled check box. Unchecked boxes are inset; checked boxes
// are raised and filled with the primary colour.
type Checkbox struct {
	BaseComponent
	label    string
	checked  bool
	disabled bool
	focused  bool
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label string) *Checkbox {
	return &Checkbox{BaseComponent: NewBaseComponent(), label: label}
}

// View renders with the default theme.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	box := indicator(ctx.Theme, c.checked, c.focused, "[", "]", "✓")
	out := box
	if c.label != "" {
		out = box + " " + ctx.Theme.Typography.Body.Render(c.label)
	}
	style := c.ComputeStyle(ctx.Theme)
	if c.disabled {
		style = style.Faint(true)
	}
	return style.Render(out)
}

// indicator draws a one-cell mark between two caps. The caps take the bevel
// shades: lit on the left when raised, on the right when inset.
func indicator(theme Theme, checked, focused bool, left, right, mark string) string {
	palette := theme.Palette
	lit := lipgloss.NewStyle().Foreground(palette.Surface.Light)
	shade := lipgloss.NewStyle().Foreground(palette.Surface.Dark)
	if !checked {
		lit, shade = shade, lit
	}
	if focused {
		lit = lit.Foreground(palette.Ring)
		shade = shade.Foreground(palette.Ring)
	}

	inner := lipgloss.NewStyle().Background(palette.Surface.Base).Render(" ")
	if checked {
		inner = lipgloss.NewStyle().
			Background(palette.Primary.Base).
			Foreground(palette.Primary.OnBase).
			Bold(true).
			Render(mark)
	}
	return lit.Render(left) + inner + shade.Render(right)
}

// Toggle flips the state unless disabled and reports the new state.
func (c *Checkbox) Toggle() bool {
	if !c.disabled {
		c.checked = !c.checked
	}
	return c.checked
}

// SetChecked sets the state.
func (c *Checkbox) SetChecked(checked bool) *Checkbox {
	c.checked = checked
	return c
}

// Checked reports the state.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// WithDisabled sets the disabled state.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// SetFocused marks the checkbox as focused.
func (c *Checkbox) SetFocused(focused bool) {
	c.focused = focused
}

// Role is "checkbox".
func (c *Checkbox) Role() string {
	return "checkbox"
}
