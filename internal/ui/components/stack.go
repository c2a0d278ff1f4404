package components

import (
	"strings"

	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Stack arranges children along one axis with an optional gap.
type Stack struct {
	BaseComponent
	children    []ui.Renderable
	orientation Orientation
	gap         int
	align       CrossAxisAlignment
	constraints Constraints
}

// NewStack creates a vertical stack.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		orientation:   Vertical,
		align:         CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithOrientation(Horizontal)
}

// View renders with the default theme.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every child with a context narrowed to the stack's
// constraints, then joins them along the stack's axis.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme)
	effective := s.merge(ctx.Constraints)
	childCtx := ctx.WithConstraints(s.childConstraints(effective))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}
	if len(views) == 0 {
		return style.Render("")
	}

	if effective.MaxWidth > 0 {
		style = style.MaxWidth(effective.MaxWidth)
	}
	if effective.MaxHeight > 0 {
		style = style.MaxHeight(effective.MaxHeight)
	}
	return style.Render(s.join(views))
}

func (s *Stack) join(views []string) string {
	pos := s.align.position()
	if s.gap > 0 {
		spacer := strings.Repeat(" ", s.gap)
		if s.orientation == Vertical {
			spacer = strings.Repeat("\n", s.gap-1)
		}
		spaced := make([]string, 0, len(views)*2-1)
		for i, view := range views {
			if i > 0 {
				spaced = append(spaced, spacer)
			}
			spaced = append(spaced, view)
		}
		views = spaced
	}

	if s.orientation == Horizontal {
		return lipgloss.JoinHorizontal(pos, views...)
	}
	return lipgloss.JoinVertical(pos, views...)
}

func (s *Stack) merge(parent Constraints) Constraints {
	result := parent
	if s.constraints.MaxWidth > 0 && (result.MaxWidth <= 0 || s.constraints.MaxWidth < result.MaxWidth) {
		result.MaxWidth = s.constraints.MaxWidth
	}
	if s.constraints.MaxHeight > 0 && (result.MaxHeight <= 0 || s.constraints.MaxHeight < result.MaxHeight) {
		result.MaxHeight = s.constraints.MaxHeight
	}
	return result
}

// childConstraints splits the width evenly across a horizontal stack.
func (s *Stack) childConstraints(parent Constraints) Constraints {
	child := parent
	if s.orientation != Horizontal || parent.MaxWidth <= 0 || len(s.children) == 0 {
		return child
	}
	available := parent.MaxWidth - s.gap*(len(s.children)-1)
	if available > 0 {
		child.MaxWidth = available / len(s.children)
	}
	return child
}

// WithOrientation sets the layout axis.
func (s *Stack) WithOrientation(o Orientation) *Stack {
	s.orientation = o
	return s
}

// WithGap sets the cells between children.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.align = align
	return s
}

// WithAppliers replaces the stack's style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
	return s
}

// WithConstraints sets sizing constraints.
func (s *Stack) WithConstraints(c Constraints) *Stack {
	s.constraints = c
	return s
}

// Add appends children.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the children.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// SetChildren replaces the children.
func (s *Stack) SetChildren(children []ui.Renderable) *Stack {
	s.children = children
	return s
}

// Orientation returns the layout axis.
func (s *Stack) Orientation() Orientation {
	return s.orientation
}
