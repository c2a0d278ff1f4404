// Package slider implements a drag-to-adjust numeric value on a
// surface.Surface.
//
// Pressing the slider jumps to the pressed column and starts a drag. While
// dragging, move and release are observed surface-wide, so the drag follows
// the pointer past the slider's edges and ends wherever the button is
// released. Those listeners exist only for the duration of the drag.
package slider

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/surface"
)

// Role is the slider's accessibility role.
const Role = "slider"

const (
	defaultWidth = 32
	height       = 3
)

// Config configures a Slider. The zero Range means 0 to 100 in steps of 1.
//
// With OnValueChange set the host owns the value: changes are reported to
// the callback and shown once the host calls SetValue. Without it the slider
// keeps the value itself.
type Config struct {
	Value         float64
	Range         Range
	OnValueChange func(float64)
	Disabled      bool
	Width         int
	KeyMap        *KeyMap
}

// Slider is a horizontal value picker bound to one surface.
type Slider struct {
	surface  *surface.Surface
	node     *surface.Node
	rng      Range
	value    float64
	onChange func(float64)
	keys     KeyMap
	width    int

	disabled bool
	focused  bool
	dragging bool
	disposed bool

	move *surface.Subscription
	up   *surface.Subscription
}

// New creates a slider whose node hangs under parent (the surface root when
// nil). Call Layout before dispatching pointer events.
func New(surf *surface.Surface, parent *surface.Node, cfg Config) *Slider {
	s := &Slider{
		surface:  surf,
		rng:      cfg.Range.Normalize(),
		onChange: cfg.OnValueChange,
		keys:     DefaultKeyMap(),
		width:    cfg.Width,
		disabled: cfg.Disabled,
	}
	if cfg.KeyMap != nil {
		s.keys = *cfg.KeyMap
	}
	if s.width <= 0 {
		s.width = defaultWidth
	}
	s.value = Quantize(cfg.Value, s.rng)

	s.node = surf.NewNode(parent, "slider")
	s.node.On(surface.PointerDown, func(ev surface.PointerEvent) {
		s.BeginDrag(float64(ev.X))
	})
	return s
}

// Layout places the slider's top-left corner at (x, y).
func (s *Slider) Layout(x, y int) {
	s.node.SetBounds(surface.Rect{X: x, Y: y, Width: s.width, Height: height})
}

// track returns the column of the first track cell and the distance to the
// last one, so pressing either end cell yields Min or Max exactly.
func (s *Slider) track() (float64, float64) {
	b := s.node.Bounds()
	return float64(b.X + 1), float64(b.Width - 3)
}

// BeginDrag jumps to pointerX and starts following the pointer. It does
// nothing while disabled or already dragging.
func (s *Slider) BeginDrag(pointerX float64) {
	if s.disabled || s.dragging || s.disposed {
		return
	}
	s.emitAt(pointerX)
	s.dragging = true
	s.move = s.surface.Listen(surface.PointerMove, func(ev surface.PointerEvent) {
		s.PointerMove(float64(ev.X))
	})
	s.up = s.surface.Listen(surface.PointerUp, func(surface.PointerEvent) {
		s.EndDrag()
	})
}

// PointerMove reports the value under pointerX while dragging. Every move
// emits, even when the value is unchanged. A slider disabled mid-drag keeps
// the drag until release but emits nothing.
func (s *Slider) PointerMove(pointerX float64) {
	if !s.dragging || s.disabled {
		return
	}
	s.emitAt(pointerX)
}

// EndDrag stops the drag and releases its listeners. Without a drag it does
// nothing.
func (s *Slider) EndDrag() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.move.Close()
	s.up.Close()
	s.move, s.up = nil, nil
}

func (s *Slider) emitAt(pointerX float64) {
	left, width := s.track()
	s.emit(ValueFromPointer(pointerX, left, width, s.rng))
}

func (s *Slider) emit(v float64) {
	if s.onChange == nil {
		s.value = v
		return
	}
	s.onChange(v)
}

// Dragging reports whether a drag is in progress.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// SetValue shows the host's value, snapped onto the range's step grid.
func (s *Slider) SetValue(v float64) {
	s.value = Quantize(v, s.rng)
}

// Value returns the displayed value.
func (s *Slider) Value() float64 {
	return s.value
}

// Range returns the normalized range.
func (s *Slider) Range() Range {
	return s.rng
}

// Percentage returns the displayed value's position as 0 to 100.
func (s *Slider) Percentage() float64 {
	return Percentage(s.value, s.rng)
}

// SetDisabled enables or disables input.
func (s *Slider) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether input is ignored.
func (s *Slider) Disabled() bool {
	return s.disabled
}

// SetFocused marks the slider as having keyboard focus.
func (s *Slider) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports keyboard focus.
func (s *Slider) Focused() bool {
	return s.focused
}

// Width returns the slider's width in cells.
func (s *Slider) Width() int {
	return s.width
}

// KeyMap returns the active bindings.
func (s *Slider) KeyMap() KeyMap {
	return s.keys
}

// HandleKey steps the value from the keyboard and reports whether msg was
// used. Disabled sliders use nothing.
func (s *Slider) HandleKey(msg tea.KeyMsg) bool {
	if s.disabled || s.disposed {
		return false
	}
	switch {
	case key.Matches(msg, s.keys.Decrease):
		s.emit(Quantize(s.value-s.rng.Step, s.rng))
	case key.Matches(msg, s.keys.Increase):
		s.emit(Quantize(s.value+s.rng.Step, s.rng))
	case key.Matches(msg, s.keys.Min):
		s.emit(s.rng.Min)
	case key.Matches(msg, s.keys.Max):
		s.emit(s.rng.top())
	default:
		return false
	}
	return true
}

// Dispose ends any drag and detaches the slider's node. It is safe to call
// twice.
func (s *Slider) Dispose() {
	if s.disposed {
		return
	}
	s.EndDrag()
	s.surface.Remove(s.node)
	s.disposed = true
}

// Role returns the accessibility role.
func (s *Slider) Role() string {
	return Role
}

// AriaValues returns aria-valuemin, aria-valuemax and aria-valuenow.
func (s *Slider) AriaValues() (float64, float64, float64) {
	return s.rng.Min, s.rng.Max, s.value
}
