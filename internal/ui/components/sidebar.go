package components

import (
	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// SidebarVariant selects the sidebar's depth.
type SidebarVariant int

const (
	SidebarVariantDefault SidebarVariant = iota
	SidebarVariantFlat
	SidebarVariantPressed
)

// SidebarSize selects the expanded width.
type SidebarSize int

const (
	SidebarSizeDefault SidebarSize = iota
	SidebarSizeSmall
	SidebarSizeLarge
)

func (s SidebarSize) width() int {
	switch s {
	case SidebarSizeSmall:
		return 8
	case SidebarSizeLarge:
		return 34
	default:
		return 26
	}
}

// SidebarItem is one navigation entry.
type SidebarItem struct {
	Icon   string
	Label  string
	Active bool
}

// Sidebar is a navigation column with a header, items and an optional footer.
// Collapsed sidebars use the small width and show only item icons.
type Sidebar struct {
	BaseComponent
	title     string
	items     []SidebarItem
	footer    ui.Renderable
	variant   SidebarVariant
	size      SidebarSize
	collapsed bool
	height    int
}

// NewSidebar creates a sidebar with the given title.
func NewSidebar(title string, items ...SidebarItem) *Sidebar {
	return &Sidebar{BaseComponent: NewBaseComponent(), title: title, items: items}
}

// View renders with the default theme.
func (s *Sidebar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (s *Sidebar) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	size := s.size
	if s.collapsed {
		size = SidebarSizeSmall
	}
	width := size.width()

	frame := lipgloss.NewStyle().Background(theme.Palette.Surface.Base).Padding(0, 1)
	switch s.variant {
	case SidebarVariantFlat:
		frame = Neu(NeuFlat)(frame, theme)
	case SidebarVariantPressed:
		frame = Neu(NeuPressed)(frame, theme)
	default:
		frame = frame.
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(theme.Palette.Surface.Dark).
			BorderBackground(theme.Palette.Surface.Base)
	}
	frame = s.styleOver(frame, theme)
	inner := width - frame.GetHorizontalFrameSize()

	body := NewContainer()
	body.SetStyle(frame)
	body.WithWidth(width)
	if s.height > 0 {
		body.SetStyle(frame.Height(s.height - frame.GetVerticalFrameSize()))
	}

	children := make([]ui.Renderable, 0, len(s.items)+4)
	title := s.title
	if s.collapsed {
		title = Initials(s.title)
	}
	children = append(children, Heading(3, title), NewSeparator().WithVariant(SeparatorVariantFlat).WithLength(inner))
	for _, item := range s.items {
		children = append(children, sidebarEntry{item: item, collapsed: s.collapsed, width: inner})
	}
	if s.footer != nil && !s.collapsed {
		children = append(children, NewSeparator().WithVariant(SeparatorVariantFlat).WithLength(inner), s.footer)
	}
	body.SetChildren(children)
	return body.ViewWithContext(ctx)
}

type sidebarEntry struct {
	item      SidebarItem
	collapsed bool
	width     int
}

func (e sidebarEntry) View() string {
	return e.ViewWithContext(DefaultContext())
}

func (e sidebarEntry) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	label := e.item.Icon + " " + e.item.Label
	if e.collapsed {
		label = e.item.Icon
		if label == "" {
			label = Initials(e.item.Label)
		}
	}

	style := lipgloss.NewStyle().Width(e.width).Padding(0, 1)
	if e.item.Active {
		style = style.
			Background(theme.Palette.Muted.Base).
			Foreground(theme.Palette.Primary.Base).
			Bold(true)
	} else {
		style = style.
			Background(theme.Palette.Surface.Base).
			Foreground(theme.Palette.Surface.OnBase)
	}
	return style.Render(label)
}

// WithFooter sets content below the items.
func (s *Sidebar) WithFooter(footer ui.Renderable) *Sidebar {
	s.footer = footer
	return s
}

// WithVariant sets the depth.
func (s *Sidebar) WithVariant(variant SidebarVariant) *Sidebar {
	s.variant = variant
	return s
}

// WithSize sets the expanded width.
func (s *Sidebar) WithSize(size SidebarSize) *Sidebar {
	s.size = size
	return s
}

// WithHeight fixes the outer height.
func (s *Sidebar) WithHeight(height int) *Sidebar {
	s.height = height
	return s
}

// SetCollapsed toggles the icon-only layout.
func (s *Sidebar) SetCollapsed(collapsed bool) *Sidebar {
	s.collapsed = collapsed
	return s
}

// Collapsed reports the layout.
func (s *Sidebar) Collapsed() bool {
	return s.collapsed
}

// SetActive marks the item with label active and every other item inactive.
func (s *Sidebar) SetActive(label string) {
	for i := range s.items {
		s.items[i].Active = s.items[i].Label == label
	}
}

// Width returns the rendered width.
func (s *Sidebar) Width() int {
	if s.collapsed {
		return SidebarSizeSmall.width()
	}
	return s.size.width()
}
