package components

import (
	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Container is a box around a stack of children. Card and Sidebar build on it.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
	margin  Spacing
	width   int
}

// NewContainer creates a container with a vertical layout.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders with the default theme.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the children inside the container's frame.
// Children get the width left inside the frame: the fixed width when one is
// set, otherwise whatever the parent allows.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	style = c.padding.apply(style, false)
	style = c.margin.apply(style, true)

	inner := ctx.WithConstraints(ctx.Constraints.Inside(style.GetHorizontalFrameSize()))
	if c.width > 0 {
		style = style.Width(c.width - style.GetHorizontalBorderSize())
		innerWidth := c.width - style.GetHorizontalFrameSize()
		if innerWidth < 0 {
			innerWidth = 0
		}
		inner = ctx.WithConstraints(WithMaxWidth(innerWidth))
		inner.ParentWidth = innerWidth
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(inner)
	}
	return style.Render(content)
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithWidth fixes the outer width including the border.
func (c *Container) WithWidth(width int) *Container {
	c.width = width
	return c
}

// WithStyle sets the raw style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers appends style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the children's alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// Add appends children.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.layout.Add(children...)
	return c
}

// Children returns the children.
func (c *Container) Children() []ui.Renderable {
	return c.layout.Children()
}

// SetChildren replaces the children.
func (c *Container) SetChildren(children []ui.Renderable) *Container {
	c.layout.SetChildren(children)
	return c
}
