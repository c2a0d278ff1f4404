package slider

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

// View renders with the default theme.
func (s *Slider) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext draws an inset track, the filled range up to the thumb, and
// a raised thumb.
func (s *Slider) ViewWithContext(ctx components.RenderContext) string {
	theme := ctx.Theme
	palette := theme.Palette
	cells := s.width - 2
	if cells < 1 {
		cells = 1
	}

	thumbAt := int(math.Round(s.Percentage() / 100 * float64(cells-1)))
	fill := palette.Primary.Base
	if s.disabled {
		fill = palette.Muted.Base
	}
	filled := lipgloss.NewStyle().Foreground(fill).Background(palette.Surface.Base)
	empty := lipgloss.NewStyle().Foreground(palette.Surface.Dark).Background(palette.Surface.Base)
	thumb := lipgloss.NewStyle().Foreground(palette.Surface.Light).Background(fill).Bold(true)
	if s.dragging || s.focused {
		thumb = thumb.Foreground(palette.Ring).Background(palette.Surface.Light)
	}

	var b strings.Builder
	b.WriteString(filled.Render(strings.Repeat("━", thumbAt)))
	b.WriteString(thumb.Render("●"))
	b.WriteString(empty.Render(strings.Repeat("─", cells-thumbAt-1)))

	frame := components.Neu(components.NeuPressed)(lipgloss.NewStyle().Background(palette.Surface.Base), theme)
	if s.focused && !s.disabled {
		frame = frame.BorderForeground(palette.Ring)
	}
	if s.disabled {
		frame = frame.Faint(true)
	}
	return frame.Render(b.String())
}
