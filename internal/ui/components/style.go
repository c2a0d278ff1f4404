package components

import "github.com/charmbracelet/lipgloss"

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

// Predefined palette slots for Background, Foreground and NeuOn.
var (
	PaletteSurface     PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteMuted       PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PalettePrimary     PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary   PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSuccess     PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning     PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDestructive PaletteSlot = func(p Palette) ColourSet { return p.Destructive }
)

// Background paints the slot colour and its matching text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground colours text with the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Border applies a border from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).BorderForeground(theme.Palette.Border)
	}
}

// Padding pads every side from the theme's scale.
func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(PaddingValue(theme, size))
	}
}

// PaddingX pads left and right.
func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := PaddingValue(theme, size)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY pads top and bottom.
func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := PaddingValue(theme, size)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// Margin adds margin on every side.
func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(MarginValue(theme, size))
	}
}

// MarginX adds margin left and right.
func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := MarginValue(theme, size)
		return base.MarginLeft(v).MarginRight(v)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// Faint dims the output, used for disabled states.
func Faint() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Faint(true)
	}
}

// OnSurface paints the surface background and text colour.
func OnSurface() StyleFunc {
	return Background(PaletteSurface)
}
