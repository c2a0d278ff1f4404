package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressTrack selects how the track is drawn.
type ProgressTrack int

const (
	// ProgressTrackInset carves the track into the surface.
	ProgressTrackInset ProgressTrack = iota
	// ProgressTrackFlat draws the bar without a frame.
	ProgressTrackFlat
)

// ProgressIndicator selects the fill colour.
type ProgressIndicator int

const (
	ProgressIndicatorDefault ProgressIndicator = iota
	ProgressIndicatorSuccess
	ProgressIndicatorWarning
	ProgressIndicatorDestructive
)

func (p ProgressIndicator) slot() PaletteSlot {
	switch p {
	case ProgressIndicatorSuccess:
		return PaletteSuccess
	case ProgressIndicatorWarning:
		return PaletteWarning
	case ProgressIndicatorDestructive:
		return PaletteDestructive
	default:
		return PalettePrimary
	}
}

const defaultProgressWidth = 30

// ProgressPercent converts value out of total to a percentage in [0, 100].
// A non-positive total yields 0.
func ProgressPercent(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	pct := value / total * 100
	switch {
	case math.IsNaN(pct), pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

// Progress is a determinate progress bar drawn by bubbles/progress.
type Progress struct {
	BaseComponent
	value     float64
	max       float64
	width     int
	track     ProgressTrack
	indicator ProgressIndicator
	showLabel bool
}

// NewProgress creates a bar out of 100.
func NewProgress(value float64) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		value:         value,
		max:           100,
		width:         defaultProgressWidth,
	}
}

// View renders with the default theme.
func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx. The bar shrinks to fit a narrower
// constraint, including the frame of an inset track.
func (p *Progress) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := lipgloss.NewStyle().Background(theme.Palette.Surface.Base)
	if p.track == ProgressTrackInset {
		frame = Neu(NeuPressed)(frame, theme)
	}
	frame = p.styleOver(frame, theme)

	width := p.width
	if limit := ctx.Constraints.MaxWidth; limit > 0 && width+frame.GetHorizontalFrameSize() > limit {
		width = limit - frame.GetHorizontalFrameSize()
	}
	if width < 1 {
		width = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(p.indicator.slot()(theme.Palette).Base)),
		progress.WithFillCharacters('█', '░'),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Palette.Surface.Dark)

	view := frame.Render(bar.ViewAs(p.Percent() / 100))
	if !p.showLabel {
		return view
	}
	label := theme.Typography.Small.Render(fmt.Sprintf("%3.0f%%", p.Percent()))
	return lipgloss.JoinHorizontal(lipgloss.Center, view, " ", label)
}

// Percent returns the clamped percentage.
func (p *Progress) Percent() float64 {
	return ProgressPercent(p.value, p.max)
}

// SetValue updates the value.
func (p *Progress) SetValue(value float64) *Progress {
	p.value = value
	return p
}

// WithMax sets the value that counts as complete.
func (p *Progress) WithMax(total float64) *Progress {
	p.max = total
	return p
}

// WithWidth sets the bar width in cells.
func (p *Progress) WithWidth(width int) *Progress {
	p.width = width
	return p
}

// WithTrack sets the track style.
func (p *Progress) WithTrack(track ProgressTrack) *Progress {
	p.track = track
	return p
}

// WithIndicator sets the fill colour.
func (p *Progress) WithIndicator(indicator ProgressIndicator) *Progress {
	p.indicator = indicator
	return p
}

// WithLabel appends the percentage after the bar.
func (p *Progress) WithLabel(show bool) *Progress {
	p.showLabel = show
	return p
}

// Role is "progressbar".
func (p *Progress) Role() string {
	return "progressbar"
}
