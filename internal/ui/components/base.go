package components

import (
	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the raw style and the theme-aware strategy shared by
// every component. Embed it.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies one theme-aware transformation to a style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// Styles is a strategy built from StyleFuncs applied in order. Variant
// registries map each variant to one, e.g. a surface colour followed by a
// neumorphic depth.
type Styles []StyleFunc

// Apply runs every function in order.
func (s Styles) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range s {
		base = fn(base, theme)
	}
	return base
}

// Compose bundles funcs into a strategy.
func Compose(funcs ...StyleFunc) Styles {
	return Styles(funcs)
}

// NewBaseComponent returns a base with an empty style and strategy.
func NewBaseComponent() BaseComponent {
	return BaseComponent{style: lipgloss.NewStyle(), strategy: Styles(nil)}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// styleOver layers the raw style and strategy on top of a variant style.
func (b *BaseComponent) styleOver(variant lipgloss.Style, theme Theme) lipgloss.Style {
	style := variant.Inherit(b.style)
	if b.strategy == nil {
		return style
	}
	return b.strategy.Apply(style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = Compose(appliers...)
}

// AddAppliers appends functions after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	switch current := b.strategy.(type) {
	case Styles:
		b.strategy = append(current[:len(current):len(current)], appliers...)
	case nil:
		b.strategy = Compose(appliers...)
	default:
		b.strategy = append(Styles{current.Apply}, appliers...)
	}
}

// Spacing is padding or margin in cells, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// SymmetricSpacing uses vertical on top and bottom, horizontal on the sides.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

func (s Spacing) apply(style lipgloss.Style, margin bool) lipgloss.Style {
	switch {
	case s == Spacing{}:
		return style
	case margin:
		return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
	default:
		return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
	}
}

// Constraints caps a component's rendered size. Zero means unbounded.
type Constraints struct {
	MaxWidth  int
	MaxHeight int
}

// WithMaxWidth caps the width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth}
}

// Inside returns the room left for content once a frame of the given width
// (border plus padding of a raised or inset surface) is drawn. A bounded
// width never drops below one cell.
func (c Constraints) Inside(frame int) Constraints {
	if c.MaxWidth > 0 {
		c.MaxWidth = max(1, c.MaxWidth-frame)
	}
	return c
}

// RenderContext carries the theme and layout bounds down the component tree.
// It is passed explicitly; nothing reads a global theme.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext uses the default theme with no constraints.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// ContextFor uses theme with no constraints.
func ContextFor(theme Theme) RenderContext {
	return DefaultContext().WithTheme(theme)
}

// WithTheme returns a copy using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable renders against an explicit context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws r with ctx when it supports contexts, and with View otherwise.
func Render(r ui.Renderable, ctx RenderContext) string {
	if r == nil {
		return ""
	}
	if contextual, ok := r.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return r.View()
}

// Orientation is the direction of a layout or separator.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// CrossAxisAlignment aligns children across a stack's direction.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) position() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
