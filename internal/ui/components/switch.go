package components

import (
	"github.com/charmbracelet/lipgloss"
)

const switchTrackWidth = 4

// Switch is an on/off toggle. The host owns the checked state and flips it
// with Toggle in response to input.
type Switch struct {
	BaseComponent
	label    string
	checked  bool
	disabled bool
	focused  bool
}

// NewSwitch creates an unchecked switch.
func NewSwitch(label string) *Switch {
	return &Switch{BaseComponent: NewBaseComponent(), label: label}
}

// View renders with the default theme.
func (s *Switch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the track and thumb followed by the label.
func (s *Switch) ViewWithContext(ctx RenderContext) string {
	palette := ctx.Theme.Palette
	track := lipgloss.NewStyle().Width(switchTrackWidth)
	thumb := lipgloss.NewStyle().Foreground(palette.Surface.Light)

	if s.checked {
		track = track.Background(palette.Primary.Base).Align(lipgloss.Right)
		thumb = thumb.Background(palette.Primary.Base)
	} else {
		track = track.Background(palette.Surface.Dark).Align(lipgloss.Left)
		thumb = thumb.Background(palette.Surface.Dark)
	}

	control := track.Render(thumb.Render("●"))
	if s.focused {
		control = lipgloss.NewStyle().Foreground(palette.Ring).Render("›") + control
	} else {
		control = " " + control
	}

	out := control
	if s.label != "" {
		out = lipgloss.JoinHorizontal(lipgloss.Top, control, " ", ctx.Theme.Typography.Body.Render(s.label))
	}
	style := s.ComputeStyle(ctx.Theme)
	if s.disabled {
		style = style.Faint(true)
	}
	return style.Render(out)
}

// Toggle flips the state unless disabled and reports the new state.
func (s *Switch) Toggle() bool {
	if !s.disabled {
		s.checked = !s.checked
	}
	return s.checked
}

// SetChecked sets the state.
func (s *Switch) SetChecked(checked bool) *Switch {
	s.checked = checked
	return s
}

// Checked reports the state.
func (s *Switch) Checked() bool {
	return s.checked
}

// WithDisabled sets the disabled state.
func (s *Switch) WithDisabled(disabled bool) *Switch {
	s.disabled = disabled
	return s
}

// SetFocused marks the switch as focused.
func (s *Switch) SetFocused(focused bool) {
	s.focused = focused
}

// Role is "switch".
func (s *Switch) Role() string {
	return "switch"
}
