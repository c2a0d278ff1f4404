package components

import (
	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// CardVariant selects the card's depth effect.
type CardVariant int

const (
	CardVariantFlat CardVariant = iota
	CardVariantPressed
	CardVariantConvex
	// CardVariantInteractive is flat until hovered, then pressed.
	CardVariantInteractive
)

func registerCardVariants(vr *VariantRegistry) {
	vr.Register(CardVariantFlat, Compose(OnSurface(), Neu(NeuFlat)))
	vr.Register(CardVariantPressed, Compose(OnSurface(), Neu(NeuPressed)))
	vr.Register(CardVariantConvex, Compose(OnSurface(), Neu(NeuConvex)))
	vr.Register(CardVariantInteractive, Compose(OnSurface(), Neu(NeuFlat)))
}

// Card groups a header, content and footer on a raised or inset panel.
type Card struct {
	*Container
	variant     CardVariant
	hovered     bool
	title       string
	description string
	footer      ui.Renderable
}

// NewCard creates a flat card around children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		Container: NewContainer(children...).WithPadding(SymmetricSpacing(0, 1)),
		variant:   CardVariantFlat,
	}
}

// View renders with the default theme.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. The variant strategy runs before the
// card's own modifiers so callers can override it.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	frame := c.frame(ctx.Theme)

	body := NewContainer()
	body.SetStyle(frame)
	body.WithPadding(c.padding).WithMargin(c.margin).WithWidth(c.width)

	parts := make([]ui.Renderable, 0, len(c.Children())+4)
	if c.title != "" {
		parts = append(parts, Heading(3, c.title))
	}
	if c.description != "" {
		parts = append(parts, MutedText(c.description))
	}
	if len(parts) > 0 && len(c.Children()) > 0 {
		parts = append(parts, NewText(" "))
	}
	parts = append(parts, c.Children()...)
	if c.footer != nil {
		parts = append(parts, NewText(" "), c.footer)
	}
	body.SetChildren(parts)
	return body.ViewWithContext(ctx)
}

func (c *Card) frame(theme Theme) lipgloss.Style {
	variant := c.variant
	if variant == CardVariantInteractive && c.hovered {
		variant = CardVariantPressed
	}
	style := lipgloss.NewStyle()
	if strategy := theme.Variants.Get(variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	return c.styleOver(style, theme)
}

// WithVariant sets the depth effect.
func (c *Card) WithVariant(variant CardVariant) *Card {
	c.variant = variant
	return c
}

// WithTitle sets the header title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the muted line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithFooter sets content rendered below the body.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the card width.
func (c *Card) WithWidth(width int) *Card {
	c.Container.WithWidth(width)
	return c
}

// WithAppliers appends style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.Container.WithAppliers(appliers...)
	return c
}

// SetHovered marks an interactive card as hovered.
func (c *Card) SetHovered(hovered bool) {
	c.hovered = hovered
}

// Variant returns the depth effect.
func (c *Card) Variant() CardVariant {
	return c.variant
}
