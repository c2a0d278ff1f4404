package surface

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	t.Parallel()

	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top left corner", 2, 3, true},
		{"bottom right cell", 5, 4, true},
		{"right edge is exclusive", 6, 3, false},
		{"bottom edge is exclusive", 2, 5, false},
		{"left of rect", 1, 3, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Contains(tt.x, tt.y))
		})
	}

	assert.False(t, Rect{}.Contains(0, 0), "empty rect contains nothing")
}

func TestNodeContains(t *testing.T) {
	t.Parallel()

	s := New()
	trigger := s.NewNode(nil, "trigger")
	label := s.NewNode(trigger, "label")
	other := s.NewNode(nil, "other")

	assert.True(t, trigger.Contains(trigger))
	assert.True(t, trigger.Contains(label))
	assert.False(t, trigger.Contains(other))
	assert.False(t, label.Contains(trigger))
	assert.False(t, trigger.Contains(nil))
	assert.True(t, s.Root().Contains(label))
}

func TestHitTestPicksDeepestTopmostNode(t *testing.T) {
	t.Parallel()

	s := New()
	s.Root().SetBounds(Rect{Width: 80, Height: 24})
	box := s.NewNode(nil, "box")
	box.SetBounds(Rect{X: 0, Y: 0, Width: 10, Height: 5})
	inner := s.NewNode(box, "inner")
	inner.SetBounds(Rect{X: 1, Y: 1, Width: 3, Height: 1})
	overlay := s.NewNode(nil, "overlay")
	overlay.SetBounds(Rect{X: 5, Y: 0, Width: 10, Height: 2})

	assert.Same(t, inner, s.HitTest(2, 1))
	assert.Same(t, box, s.HitTest(1, 3))
	assert.Same(t, overlay, s.HitTest(6, 1), "later sibling paints on top")
	assert.Same(t, s.Root(), s.HitTest(40, 20))

	overlay.SetHidden(true)
	assert.Same(t, box, s.HitTest(6, 1), "hidden nodes are skipped")
}

func TestHitTestIgnoresParentClipping(t *testing.T) {
	t.Parallel()

	s := New()
	parent := s.NewNode(nil, "select")
	parent.SetBounds(Rect{X: 0, Y: 0, Width: 10, Height: 3})
	panel := s.NewNode(parent, "panel")
	panel.SetBounds(Rect{X: 0, Y: 3, Width: 10, Height: 4})

	assert.Same(t, panel, s.HitTest(2, 5))
}

func TestListenAndClose(t *testing.T) {
	t.Parallel()

	s := New()
	var calls int
	sub := s.Listen(PointerDown, func(PointerEvent) { calls++ })
	require.Equal(t, 1, s.ListenerCount())
	require.True(t, sub.Active())

	s.Dispatch(PointerEvent{Kind: PointerDown})
	s.Dispatch(PointerEvent{Kind: PointerMove})
	assert.Equal(t, 1, calls)

	sub.Close()
	sub.Close()
	assert.False(t, sub.Active())
	assert.Equal(t, 0, s.ListenerCount())

	s.Dispatch(PointerEvent{Kind: PointerDown})
	assert.Equal(t, 1, calls)

	var nilSub *Subscription
	assert.NotPanics(t, nilSub.Close)
}

func TestDispatchBubblesThenRunsListeners(t *testing.T) {
	t.Parallel()

	s := New()
	outer := s.NewNode(nil, "outer")
	outer.SetBounds(Rect{Width: 10, Height: 10})
	inner := s.NewNode(outer, "inner")
	inner.SetBounds(Rect{X: 1, Y: 1, Width: 2, Height: 2})

	var order []string
	inner.On(PointerDown, func(ev PointerEvent) { order = append(order, "inner") })
	outer.On(PointerDown, func(ev PointerEvent) { order = append(order, "outer") })
	s.Listen(PointerDown, func(ev PointerEvent) {
		order = append(order, "surface")
		assert.Same(t, inner, ev.Target)
	})

	ev := s.Dispatch(PointerEvent{Kind: PointerDown, X: 1, Y: 1})
	assert.Same(t, inner, ev.Target)
	assert.Equal(t, []string{"inner", "outer", "surface"}, order)

	inner.On(PointerDown, nil)
	order = nil
	s.Dispatch(PointerEvent{Kind: PointerDown, X: 1, Y: 1})
	assert.Equal(t, []string{"outer", "surface"}, order)
}

func TestDispatchSkipsListenersClosedMidDispatch(t *testing.T) {
	t.Parallel()

	s := New()
	var second *Subscription
	var secondCalls int
	s.Listen(PointerUp, func(PointerEvent) { second.Close() })
	second = s.Listen(PointerUp, func(PointerEvent) { secondCalls++ })

	s.Dispatch(PointerEvent{Kind: PointerUp})
	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, s.ListenerCount())
}

func TestRemoveDetachesSubtree(t *testing.T) {
	t.Parallel()

	s := New()
	n := s.NewNode(nil, "widget")
	n.SetBounds(Rect{Width: 5, Height: 1})
	child := s.NewNode(n, "child")

	s.Remove(n)
	assert.Nil(t, n.Parent())
	assert.Empty(t, s.Root().Children())
	assert.Same(t, s.Root(), s.HitTest(0, 0))
	assert.True(t, n.Contains(child))

	s.Remove(s.Root())
	assert.NotNil(t, s.Root())
}

func TestFromMouse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		kind   EventKind
		wantOK bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, PointerDown, true},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, PointerUp, true},
		{"drag motion", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, PointerMove, true},
		{"wheel", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ev, ok := FromMouse(tt.msg)
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.kind, ev.Kind)
			assert.Equal(t, 3, ev.X)
			assert.Equal(t, 4, ev.Y)
		})
	}
}

func TestDispatchMouse(t *testing.T) {
	t.Parallel()

	s := New()
	var got []EventKind
	s.Listen(PointerDown, func(ev PointerEvent) { got = append(got, ev.Kind) })

	assert.True(t, s.DispatchMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}))
	assert.False(t, s.DispatchMouse(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}))
	assert.Equal(t, []EventKind{PointerDown}, got)
}
