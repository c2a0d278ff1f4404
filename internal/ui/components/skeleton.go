package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SkeletonVariant selects the placeholder depth.
type SkeletonVariant int

const (
	// SkeletonVariantInset is carved into the surface.
	SkeletonVariantInset SkeletonVariant = iota
	// SkeletonVariantFlat is drawn without a bevel.
	SkeletonVariantFlat
)

// Skeleton is a loading placeholder. A shimmer band sweeps across it, driven
// by a bubbles spinner so it ticks on the program's own clock.
type Skeleton struct {
	BaseComponent
	spinner spinner.Model
	width   int
	lines   int
	variant SkeletonVariant
	phase   int
}

// NewSkeleton creates a placeholder of the given size in cells.
func NewSkeleton(width, lines int) *Skeleton {
	if width < 1 {
		width = 1
	}
	if lines < 1 {
		lines = 1
	}
	return &Skeleton{
		BaseComponent: NewBaseComponent(),
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
		width:         width,
		lines:         lines,
	}
}

// Tick starts the shimmer.
func (s *Skeleton) Tick() tea.Msg {
	return s.spinner.Tick()
}

// Update advances the shimmer on this skeleton's tick messages.
func (s *Skeleton) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || tick.ID != s.spinner.ID() {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	s.phase++
	return cmd
}

// View renders with the default theme.
func (s *Skeleton) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx. The last line is shortened the way text
// placeholders usually are.
func (s *Skeleton) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	block := lipgloss.NewStyle().Foreground(theme.Palette.Surface.Dark).Background(theme.Palette.Surface.Base)
	shine := lipgloss.NewStyle().Foreground(theme.Palette.Surface.Light).Background(theme.Palette.Surface.Base)

	band := s.phase % (s.width + 4)
	rows := make([]string, 0, s.lines)
	for i := 0; i < s.lines; i++ {
		width := s.width
		if s.lines > 1 && i == s.lines-1 {
			width = s.width * 3 / 5
		}
		var b strings.Builder
		for x := 0; x < width; x++ {
			if x >= band-2 && x <= band {
				b.WriteString(shine.Render("▓"))
			} else {
				b.WriteString(block.Render("▒"))
			}
		}
		rows = append(rows, b.String())
	}

	frame := lipgloss.NewStyle().Background(theme.Palette.Surface.Base)
	if s.variant == SkeletonVariantInset {
		frame = Neu(NeuPressed)(frame, theme)
	}
	return s.styleOver(frame, theme).Render(strings.Join(rows, "\n"))
}

// Spinner renders the loading glyph shown beside labelled skeletons.
func (s *Skeleton) Spinner() string {
	return s.spinner.View()
}

// WithVariant sets the depth.
func (s *Skeleton) WithVariant(variant SkeletonVariant) *Skeleton {
	s.variant = variant
	return s
}
