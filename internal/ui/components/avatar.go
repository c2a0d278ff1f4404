package components

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// AvatarVariant selects the avatar frame.
type AvatarVariant int

const (
	AvatarVariantFlat AvatarVariant = iota
	AvatarVariantPressed
	// AvatarVariantRing adds a primary-coloured ring to the flat frame.
	AvatarVariantRing
)

// AvatarSize selects the padding around the initials.
type AvatarSize int

const (
	AvatarSizeDefault AvatarSize = iota
	AvatarSizeSmall
	AvatarSizeLarge
)

// Avatar shows a user's initials in a round frame. Terminals have no images,
// so the fallback is always what renders.
type Avatar struct {
	BaseComponent
	name     string
	fallback string
	variant  AvatarVariant
	size     AvatarSize
}

// NewAvatar creates an avatar for name.
func NewAvatar(name string) *Avatar {
	return &Avatar{BaseComponent: NewBaseComponent(), name: name}
}

// Initials returns up to two uppercase initials of name, or "?" when it has
// no letters or digits.
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// View renders with the default theme.
func (a *Avatar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (a *Avatar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	label := a.fallback
	if label == "" {
		label = Initials(a.name)
	}

	pad := 1
	switch a.size {
	case AvatarSizeSmall:
		pad = 0
	case AvatarSizeLarge:
		pad = 2
	}

	style := lipgloss.NewStyle().
		Background(theme.Palette.Muted.Base).
		Foreground(theme.Palette.Muted.OnBase).
		Bold(true).
		Padding(0, pad)
	switch a.variant {
	case AvatarVariantPressed:
		style = Neu(NeuPressed)(style, theme)
	case AvatarVariantRing:
		style = Neu(NeuFlat)(style, theme).BorderForeground(theme.Palette.Ring)
	default:
		style = Neu(NeuFlat)(style, theme)
	}
	return a.styleOver(style, theme).Render(label)
}

// WithFallback overrides the initials.
func (a *Avatar) WithFallback(fallback string) *Avatar {
	a.fallback = fallback
	return a
}

// WithVariant sets the frame.
func (a *Avatar) WithVariant(variant AvatarVariant) *Avatar {
	a.variant = variant
	return a
}

// WithSize sets the size.
func (a *Avatar) WithSize(size AvatarSize) *Avatar {
	a.size = size
	return a
}
