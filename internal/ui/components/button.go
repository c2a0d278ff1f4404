package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant selects the button's colour and depth.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantPrimary
	ButtonVariantSecondary
	ButtonVariantDestructive
	ButtonVariantSuccess
	ButtonVariantWarning
	ButtonVariantOutline
	ButtonVariantGhost
	ButtonVariantLink
	ButtonVariantFlat
	ButtonVariantPressed
)

// ButtonSize selects horizontal padding.
type ButtonSize int

const (
	ButtonSizeDefault ButtonSize = iota
	ButtonSizeSmall
	ButtonSizeLarge
	ButtonSizeIcon
)

func registerButtonVariants(vr *VariantRegistry) {
	vr.Register(ButtonVariantDefault, Compose(OnSurface(), Neu(NeuFlat)))
	vr.Register(ButtonVariantFlat, Compose(OnSurface(), Neu(NeuFlat)))
	vr.Register(ButtonVariantPressed, Compose(OnSurface(), Neu(NeuPressed)))
	vr.Register(ButtonVariantPrimary, Compose(Background(PalettePrimary), NeuOn(PalettePrimary, NeuFlat), bold))
	vr.Register(ButtonVariantSecondary, Compose(Background(PaletteSecondary), Neu(NeuFlat)))
	vr.Register(ButtonVariantDestructive, Compose(Background(PaletteDestructive), NeuOn(PaletteDestructive, NeuFlat), bold))
	vr.Register(ButtonVariantSuccess, Compose(Background(PaletteSuccess), NeuOn(PaletteSuccess, NeuFlat), bold))
	vr.Register(ButtonVariantWarning, Compose(Background(PaletteWarning), NeuOn(PaletteWarning, NeuFlat), bold))
	vr.Register(ButtonVariantOutline, Compose(OnSurface(), Border(BorderVariantRounded)))
	vr.Register(ButtonVariantGhost, Compose(OnSurface(), ghostFrame))
	vr.Register(ButtonVariantLink, Compose(Foreground(PalettePrimary), link))
}

// ghostFrame reserves the border cells so ghost buttons line up with framed ones.
func ghostFrame(base lipgloss.Style, theme Theme) lipgloss.Style {
	return base.Border(lipgloss.HiddenBorder()).BorderBackground(theme.Palette.Surface.Base)
}

func link(base lipgloss.Style, _ Theme) lipgloss.Style {
	return base.Underline(true)
}

func bold(base lipgloss.Style, _ Theme) lipgloss.Style {
	return base.Bold(true)
}

// Button renders a labelled neumorphic button. Focused buttons are drawn with
// the theme's ring colour; pressed buttons swap to the inset effect.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	size     ButtonSize
	disabled bool
	pressed  bool
	focused  bool
}

// NewButton creates a default button.
func NewButton(label string) *Button {
	return &Button{BaseComponent: NewBaseComponent(), label: label}
}

// View renders with the default theme.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	variant := b.variant
	if b.pressed && variant != ButtonVariantLink && variant != ButtonVariantGhost {
		variant = ButtonVariantPressed
	}

	style := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.variant == ButtonVariantLink {
		style = style.Padding(0)
	} else {
		style = style.Padding(0, b.size.padding())
	}
	if b.focused && !b.disabled && variant != ButtonVariantLink {
		style = style.BorderForeground(theme.Palette.Ring)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	return b.styleOver(style, theme)
}

func (s ButtonSize) padding() int {
	switch s {
	case ButtonSizeSmall:
		return 1
	case ButtonSizeLarge:
		return 4
	case ButtonSizeIcon:
		return 0
	default:
		return 2
	}
}

// WithVariant sets the variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithSize sets the size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithPressed renders the button inset, as while held down.
func (b *Button) WithPressed(pressed bool) *Button {
	b.pressed = pressed
	return b
}

// WithFocused draws the focus ring.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithAppliers appends style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the label.
func (b *Button) Label() string {
	return b.label
}

// IsDisabled reports the disabled state.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// Role is "button".
func (b *Button) Role() string {
	return "button"
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantPrimary)
}

// SecondaryButton creates a secondary button.
func SecondaryButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantSecondary)
}

// DestructiveButton creates a destructive button.
func DestructiveButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantDestructive)
}

// GhostButton creates a frameless button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
