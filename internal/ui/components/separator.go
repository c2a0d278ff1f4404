package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SeparatorVariant selects how the rule is shaded.
type SeparatorVariant int

const (
	// SeparatorVariantDefault is carved into the surface.
	SeparatorVariantDefault SeparatorVariant = iota
	// SeparatorVariantRaised stands out of the surface.
	SeparatorVariantRaised
	// SeparatorVariantFlat is a plain border-coloured rule.
	SeparatorVariantFlat
)

const defaultSeparatorLength = 40

// Separator draws a horizontal or vertical rule.
type Separator struct {
	BaseComponent
	orientation Orientation
	variant     SeparatorVariant
	length      int
}

// NewSeparator creates a horizontal inset separator.
func NewSeparator() *Separator {
	return &Separator{BaseComponent: NewBaseComponent(), orientation: Horizontal}
}

// VerticalSeparator creates a vertical inset separator of the given height.
func VerticalSeparator(height int) *Separator {
	return NewSeparator().WithOrientation(Vertical).WithLength(height)
}

// View renders with the default theme.
func (s *Separator) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the rule. Without an explicit length a horizontal
// rule fills the available width.
func (s *Separator) ViewWithContext(ctx RenderContext) string {
	length := s.resolveLength(ctx)
	if length <= 0 {
		return ""
	}

	style := s.styleOver(s.variantStyle(ctx.Theme), ctx.Theme)
	if s.orientation == Vertical {
		return style.Render(strings.TrimSuffix(strings.Repeat("│\n", length), "\n"))
	}
	return style.Render(strings.Repeat("─", length))
}

func (s *Separator) resolveLength(ctx RenderContext) int {
	if s.length > 0 {
		return s.length
	}
	if s.orientation == Vertical {
		return 1
	}
	switch {
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	case ctx.ParentWidth > 0:
		return ctx.ParentWidth
	default:
		return defaultSeparatorLength
	}
}

// variantStyle picks the bevel shade the rule is drawn in. An inset groove is
// drawn in the dark shade, a ridge in the light shade.
func (s *Separator) variantStyle(theme Theme) lipgloss.Style {
	surface := theme.Palette.Surface
	style := lipgloss.NewStyle().Background(surface.Base)
	switch s.variant {
	case SeparatorVariantRaised:
		return style.Foreground(surface.Light)
	case SeparatorVariantFlat:
		return style.Foreground(theme.Palette.Border)
	default:
		return style.Foreground(surface.Dark)
	}
}

// WithOrientation sets the axis.
func (s *Separator) WithOrientation(o Orientation) *Separator {
	s.orientation = o
	return s
}

// WithVariant sets the shading.
func (s *Separator) WithVariant(variant SeparatorVariant) *Separator {
	s.variant = variant
	return s
}

// WithLength fixes the rule length in cells.
func (s *Separator) WithLength(length int) *Separator {
	s.length = length
	return s
}

// WithAppliers appends style modifiers.
func (s *Separator) WithAppliers(appliers ...StyleFunc) *Separator {
	s.AddAppliers(appliers...)
	return s
}

// Role is "separator".
func (s *Separator) Role() string {
	return "separator"
}
