// Package selectbox implements a single-choice dropdown on a surface.Surface.
//
// A Select is a trigger with a content panel below it. The panel's node is a
// child of the trigger's node, so a press anywhere in the open panel counts
// as inside the select; a press anywhere else closes it. The surface-wide
// listener that detects those presses exists only while the select is open.
package selectbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/surface"
)

// Accessibility roles of the select's parts.
const (
	RoleCombobox = "combobox"
	RoleListbox  = "listbox"
	RoleOption   = "option"
)

// TriggerVariant selects the closed trigger's depth. Open triggers are always
// drawn pressed.
type TriggerVariant int

const (
	TriggerDefault TriggerVariant = iota
	TriggerPressed
)

const (
	defaultWidth  = 24
	triggerHeight = 3
)

// Config configures a Select. A non-nil Value makes the select External;
// otherwise it is Owned and starts at DefaultValue. OnValueChange is called
// with every committed selection in both cases.
type Config struct {
	Value         *string
	DefaultValue  string
	OnValueChange func(string)
	Placeholder   string
	Variant       TriggerVariant
	Width         int
	Entries       []Entry
	KeyMap        *KeyMap
}

// Select is a dropdown bound to one surface. Close it with Dispose when it is
// removed from the screen.
type Select struct {
	surface *surface.Surface
	source  valueSource
	keys    KeyMap

	entries     []Entry
	placeholder string
	variant     TriggerVariant
	width       int

	open      bool
	focused   bool
	highlight int
	disposed  bool

	trigger *surface.Node
	content *surface.Node
	items   []*surface.Node
	outside *surface.Subscription
}

// New creates a closed select whose nodes hang under parent (the surface root
// when nil). Call Layout before dispatching pointer events.
func New(surf *surface.Surface, parent *surface.Node, cfg Config) *Select {
	s := &Select{
		surface:     surf,
		source:      newValueSource(cfg),
		keys:        DefaultKeyMap(),
		placeholder: cfg.Placeholder,
		variant:     cfg.Variant,
		width:       cfg.Width,
		highlight:   -1,
	}
	if cfg.KeyMap != nil {
		s.keys = *cfg.KeyMap
	}
	if s.width <= 0 {
		s.width = defaultWidth
	}

	s.trigger = surf.NewNode(parent, "select.trigger")
	s.trigger.On(surface.PointerDown, func(ev surface.PointerEvent) {
		if ev.Target == s.trigger {
			s.Toggle()
		}
	})
	s.content = surf.NewNode(s.trigger, "select.content")
	s.content.SetHidden(true)
	s.SetEntries(cfg.Entries)
	return s
}

// SetEntries replaces the panel rows. Options are declared per render, so
// hosts may call this whenever their option list changes.
func (s *Select) SetEntries(entries []Entry) {
	if s.disposed {
		return
	}
	for _, n := range s.items {
		s.surface.Remove(n)
	}
	s.entries = append([]Entry(nil), entries...)
	s.items = make([]*surface.Node, len(s.entries))
	for i, e := range s.entries {
		node := s.surface.NewNode(s.content, "select.entry")
		if e.Kind == KindItem {
			value := e.Value
			node.On(surface.PointerDown, func(surface.PointerEvent) {
				s.SelectOption(value)
			})
		}
		s.items[i] = node
	}
	if s.highlight >= len(s.entries) {
		s.highlight = -1
	}
	s.Layout(s.trigger.Bounds().X, s.trigger.Bounds().Y)
}

// Layout places the select with its trigger's top-left corner at (x, y).
// The panel sits directly below the trigger.
func (s *Select) Layout(x, y int) {
	s.trigger.SetBounds(surface.Rect{X: x, Y: y, Width: s.width, Height: triggerHeight})
	s.content.SetBounds(surface.Rect{X: x, Y: y + triggerHeight, Width: s.width, Height: s.panelRows() + 2})
	for i, n := range s.items {
		n.SetBounds(surface.Rect{X: x + 1, Y: y + triggerHeight + 1 + i, Width: s.width - 2, Height: 1})
	}
}

// Height returns the rows the select occupies when open.
func (s *Select) Height() int {
	return triggerHeight + s.panelRows() + 2
}

// panelRows is the panel's inner height. An empty panel still draws one row.
func (s *Select) panelRows() int {
	if len(s.entries) == 0 {
		return 1
	}
	return len(s.entries)
}

// Width returns the select's width in cells.
func (s *Select) Width() int {
	return s.width
}

// Open shows the panel. It is a no-op when already open.
func (s *Select) Open() {
	if s.open || s.disposed {
		return
	}
	s.open = true
	s.content.SetHidden(false)
	s.highlight = s.selectedIndex()
	if s.highlight < 0 {
		s.highlight = s.step(-1, 1)
	}
	s.outside = s.surface.Listen(surface.PointerDown, s.handleOutside)
}

// Close hides the panel and releases the outside listener.
func (s *Select) Close() {
	if !s.open {
		return
	}
	s.open = false
	s.content.SetHidden(true)
	s.outside.Close()
	s.outside = nil
}

// Toggle flips between open and closed.
func (s *Select) Toggle() {
	if s.open {
		s.Close()
		return
	}
	s.Open()
}

func (s *Select) handleOutside(ev surface.PointerEvent) {
	if !s.trigger.Contains(ev.Target) {
		s.Close()
	}
}

// SelectOption commits value and closes the panel. Disabled and unknown
// values are ignored and leave the panel as it was. Choosing the current
// value still closes the panel and still reports the change.
func (s *Select) SelectOption(value string) {
	if s.disposed {
		return
	}
	idx := s.indexOf(value)
	if idx < 0 || !s.entries[idx].Selectable() {
		return
	}
	s.source.choose(value)
	s.Close()
}

// SetValue supplies the host's value to an External select. Owned selects
// ignore it.
func (s *Select) SetValue(value string) {
	if ext, ok := s.source.(*externalValue); ok {
		ext.value, ext.set = value, true
	}
}

// ClearValue tells an External select the host has no value, so the trigger
// shows the placeholder. Owned selects ignore it.
func (s *Select) ClearValue() {
	if ext, ok := s.source.(*externalValue); ok {
		ext.value, ext.set = "", false
	}
}

// Value returns the authoritative value and whether there is one.
func (s *Select) Value() (string, bool) {
	return s.source.current()
}

// Ownership reports who owns the value.
func (s *Select) Ownership() Ownership {
	return s.source.ownership()
}

// IsOpen reports whether the panel is visible.
func (s *Select) IsOpen() bool {
	return s.open
}

// SetFocused marks the select as having keyboard focus. Losing focus closes it.
func (s *Select) SetFocused(focused bool) {
	s.focused = focused
	if !focused {
		s.Close()
	}
}

// Focused reports keyboard focus.
func (s *Select) Focused() bool {
	return s.focused
}

// Dispose closes the select and detaches its nodes. It is safe to call twice.
func (s *Select) Dispose() {
	if s.disposed {
		return
	}
	s.Close()
	s.surface.Remove(s.trigger)
	s.disposed = true
}

// KeyMap returns the active bindings.
func (s *Select) KeyMap() KeyMap {
	return s.keys
}

// HandleKey applies keyboard navigation and reports whether msg was used.
func (s *Select) HandleKey(msg tea.KeyMsg) bool {
	if s.disposed {
		return false
	}
	if !s.open {
		if key.Matches(msg, s.keys.Toggle, s.keys.Down) {
			s.Open()
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, s.keys.Close):
		s.Close()
	case key.Matches(msg, s.keys.Up):
		s.highlight = s.step(s.highlight, -1)
	case key.Matches(msg, s.keys.Down):
		s.highlight = s.step(s.highlight, 1)
	case key.Matches(msg, s.keys.Toggle):
		if s.highlight >= 0 && s.highlight < len(s.entries) {
			s.SelectOption(s.entries[s.highlight].Value)
		} else {
			s.Close()
		}
	default:
		return false
	}
	return true
}

// Highlighted returns the value under the keyboard highlight.
func (s *Select) Highlighted() (string, bool) {
	if s.highlight < 0 || s.highlight >= len(s.entries) {
		return "", false
	}
	return s.entries[s.highlight].Value, true
}

// step returns the next selectable index after from in direction dir, or
// from when there is none.
func (s *Select) step(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(s.entries); i += dir {
		if s.entries[i].Selectable() {
			return i
		}
	}
	return from
}

func (s *Select) indexOf(value string) int {
	for i, e := range s.entries {
		if e.Kind == KindItem && e.Value == value {
			return i
		}
	}
	return -1
}

func (s *Select) selectedIndex() int {
	value, ok := s.source.current()
	if !ok {
		return -1
	}
	idx := s.indexOf(value)
	if idx >= 0 && !s.entries[idx].Selectable() {
		return -1
	}
	return idx
}

// Role is the trigger's accessibility role.
func (s *Select) Role() string {
	return RoleCombobox
}

// Expanded mirrors aria-expanded.
func (s *Select) Expanded() bool {
	return s.open
}

// View renders with the default theme.
func (s *Select) View() string {
	return s.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the trigger and, when open, the panel below it.
func (s *Select) ViewWithContext(ctx components.RenderContext) string {
	value, hasValue := s.source.current()
	return render(ctx.Theme, Context{
		Value:       value,
		HasValue:    hasValue,
		Open:        s.open,
		Focused:     s.focused,
		Highlight:   s.highlight,
		Placeholder: s.placeholder,
		Variant:     s.variant,
		Width:       s.width,
	}, s.entries)
}
