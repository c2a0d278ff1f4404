package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant selects the badge colour.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantSecondary
	BadgeVariantSuccess
	BadgeVariantWarning
	BadgeVariantDestructive
	BadgeVariantOutline
	BadgeVariantPressed
)

func registerBadgeVariants(vr *VariantRegistry) {
	vr.Register(BadgeVariantDefault, Compose(OnSurface()))
	vr.Register(BadgeVariantPrimary, Compose(Background(PalettePrimary), bold))
	vr.Register(BadgeVariantSecondary, Compose(Background(PaletteSecondary)))
	vr.Register(BadgeVariantSuccess, Compose(Background(PaletteSuccess), bold))
	vr.Register(BadgeVariantWarning, Compose(Background(PaletteWarning), bold))
	vr.Register(BadgeVariantDestructive, Compose(Background(PaletteDestructive), bold))
	vr.Register(BadgeVariantOutline, Compose(OnSurface(), Foreground(PalettePrimary)))
	vr.Register(BadgeVariantPressed, Compose(Background(PaletteMuted), Faint()))
}

// pillCaps returns the glyphs drawn either side of surface-coloured badges,
// which have no fill to set them apart.
func (v BadgeVariant) pillCaps() (string, string, bool) {
	switch v {
	case BadgeVariantDefault:
		return "(", ")", true
	case BadgeVariantOutline:
		return "[", "]", true
	default:
		return "", "", false
	}
}

// Badge is a small inline status label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{BaseComponent: NewBaseComponent(), text: text}
}

// View renders with the default theme.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if strategy := ctx.Theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	body := b.styleOver(style, ctx.Theme).Render(b.text)

	left, right, ok := b.variant.pillCaps()
	if !ok {
		return body
	}
	surface := ctx.Theme.Palette.Surface
	lit := lipgloss.NewStyle().Foreground(surface.Light).Background(surface.Base)
	shade := lipgloss.NewStyle().Foreground(surface.Dark).Background(surface.Base)
	return lit.Render(left) + body + shade.Render(right)
}

// WithVariant sets the variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers appends style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SuccessBadge creates a success badge.
func SuccessBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSuccess)
}

// WarningBadge creates a warning badge.
func WarningBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantWarning)
}

// DestructiveBadge creates a destructive badge.
func DestructiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDestructive)
}
