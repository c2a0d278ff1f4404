package showcase

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

// View renders the fixed controls, the gallery viewport and the help line,
// then draws the select on top so its open panel covers whatever is below.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < minWidth || m.height < minHeight {
		return fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
			m.width, m.height, minWidth, minHeight)
	}

	ctx := components.ContextFor(m.theme)
	render := func(r interface{ ViewWithContext(components.RenderContext) string }) string {
		return r.ViewWithContext(ctx)
	}

	lines := make([]string, fixedRows)
	paint := func(x, y int, block string) {
		lines = overlay(lines, block, x, y)
	}

	title := components.HStack(
		components.Heading(1, "neumorph"),
		components.NewBadge(m.theme.Mode.String()).WithVariant(components.BadgeVariantSecondary),
	).WithGap(2)
	paint(selectX, 0, render(title))

	status := m.status
	if status == "" {
		status = "Soft UI components for the terminal. Click, drag, or tab through the controls."
	}
	paint(selectX, 1, render(components.MutedText(status)))

	choice := m.choice
	if choice == "" {
		choice = "none"
	}
	paint(selectX, controlsY-1, render(components.NewText("Select · "+choice).WithVariant(components.TypographyVariantLabel)))
	paint(sliderX, controlsY-1, render(components.NewText(fmt.Sprintf("Slider · %g", m.level)).WithVariant(components.TypographyVariantLabel)))
	paint(sliderX, controlsY, render(m.sl))
	paint(sliderX, progressY, render(m.progress))

	paint(selectX, formsY-1, render(components.NewText("Form controls").WithVariant(components.TypographyVariantLabel)))
	paint(selectX, formsY, render(m.input))
	paint(sliderX, formsY, render(m.toggle))
	paint(sliderX, formsY+1, render(m.check))
	paint(sliderX, formsY+2, render(m.radio))
	paint(selectX, actionsY, render(m.textarea))
	paint(sliderX, actionsY, render(m.reset))
	paint(0, fixedRows-1, render(components.NewSeparator().WithLength(m.width)))

	lines = append(lines, strings.Split(m.viewport.View(), "\n")...)
	lines = append(lines, m.help.View(helpKeys{global: m.keys, widget: m.widgetKeys()}))

	lines = overlay(lines, render(m.sel), selectX, controlsY)
	return strings.Join(lines, "\n")
}

// overlay draws block onto base with its top-left corner at (x, y), growing
// base as needed. Cells of base outside the block keep their styling.
func overlay(base []string, block string, x, y int) []string {
	for i, row := range strings.Split(block, "\n") {
		at := y + i
		for len(base) <= at {
			base = append(base, "")
		}
		line := base[at]
		lineWidth := ansi.StringWidth(line)

		left := ansi.Truncate(line, x, "")
		if lineWidth < x {
			left += strings.Repeat(" ", x-lineWidth)
		}
		right := ""
		if end := x + ansi.StringWidth(row); lineWidth > end {
			right = ansi.TruncateLeft(line, end, "")
		}
		base[at] = left + row + right
	}
	return base
}
