// Package surface models the screen a Bubble Tea program draws on: a tree of
// nodes with absolute bounds, hit testing, and a registry of surface-wide
// pointer listeners.
//
// Surface-wide listeners see every pointer event of the program no matter
// where it lands. Widgets acquire them only while they need them (an open
// dropdown, an active drag) and release them through the returned
// Subscription. A Surface is owned by a single Update loop and is not safe
// for concurrent use.
package surface

import "sort"

// EventKind identifies a pointer transition.
type EventKind int

const (
	PointerDown EventKind = iota
	PointerMove
	PointerUp
)

func (k EventKind) String() string {
	switch k {
	case PointerDown:
		return "pointerdown"
	case PointerMove:
		return "pointermove"
	case PointerUp:
		return "pointerup"
	default:
		return "unknown"
	}
}

// PointerEvent is a pointer transition at a screen cell. Target is resolved
// by Dispatch through HitTest.
type PointerEvent struct {
	Kind   EventKind
	X      int
	Y      int
	Target *Node
}

// Listener reacts to a pointer event.
type Listener func(PointerEvent)

// Surface is the root of a node tree plus its surface-wide listeners.
type Surface struct {
	root      *Node
	listeners map[EventKind]map[uint64]Listener
	nextID    uint64
}

// New creates an empty surface.
func New() *Surface {
	return &Surface{
		root:      newNode("root"),
		listeners: make(map[EventKind]map[uint64]Listener),
	}
}

// Root returns the root node. Its bounds are normally the whole screen.
func (s *Surface) Root() *Node {
	return s.root
}

// NewNode creates a node under parent, or under the root when parent is nil.
func (s *Surface) NewNode(parent *Node, name string) *Node {
	if parent == nil {
		parent = s.root
	}
	n := newNode(name)
	n.parent = parent
	parent.children = append(parent.children, n)
	return n
}

// Remove detaches n and its subtree from the tree. Removing the root is a no-op.
func (s *Surface) Remove(n *Node) {
	if n == nil || n == s.root {
		return
	}
	n.detach()
}

// HitTest returns the deepest visible node containing (x, y). Later siblings
// paint over earlier ones and win ties. Parents do not clip their children.
// The root is returned when nothing else matches.
func (s *Surface) HitTest(x, y int) *Node {
	if hit := hitTest(s.root, x, y); hit != nil {
		return hit
	}
	return s.root
}

func hitTest(n *Node, x, y int) *Node {
	if n.hidden {
		return nil
	}
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTest(n.children[i], x, y); hit != nil {
			return hit
		}
	}
	if n.bounds.Contains(x, y) {
		return n
	}
	return nil
}

// Listen registers fn for every event of kind until the subscription is closed.
func (s *Surface) Listen(kind EventKind, fn Listener) *Subscription {
	s.nextID++
	id := s.nextID
	byID, ok := s.listeners[kind]
	if !ok {
		byID = make(map[uint64]Listener)
		s.listeners[kind] = byID
	}
	byID[id] = fn
	return &Subscription{surface: s, kind: kind, id: id}
}

// ListenerCount returns the number of live surface-wide listeners.
func (s *Surface) ListenerCount() int {
	total := 0
	for _, byID := range s.listeners {
		total += len(byID)
	}
	return total
}

// Dispatch resolves the event target, runs node handlers from the target up to
// the root, then runs surface-wide listeners in registration order. A
// listener closed by an earlier handler of the same dispatch is skipped. The
// resolved event is returned.
func (s *Surface) Dispatch(ev PointerEvent) PointerEvent {
	if ev.Target == nil {
		ev.Target = s.HitTest(ev.X, ev.Y)
	}

	for cur := ev.Target; cur != nil; cur = cur.parent {
		if fn, ok := cur.handlers[ev.Kind]; ok {
			fn(ev)
		}
	}

	byID := s.listeners[ev.Kind]
	if len(byID) == 0 {
		return ev
	}
	ids := make([]uint64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		fn, ok := s.listeners[ev.Kind][id]
		if !ok {
			continue
		}
		fn(ev)
	}
	return ev
}

func (s *Surface) unlisten(kind EventKind, id uint64) {
	byID, ok := s.listeners[kind]
	if !ok {
		return
	}
	delete(byID, id)
	if len(byID) == 0 {
		delete(s.listeners, kind)
	}
}

// Subscription is a handle on a surface-wide listener.
type Subscription struct {
	surface *Surface
	kind    EventKind
	id      uint64
	closed  bool
}

// Close removes the listener. It is safe to call more than once and on nil.
func (sub *Subscription) Close() {
	if sub == nil || sub.closed {
		return
	}
	sub.closed = true
	sub.surface.unlisten(sub.kind, sub.id)
}

// Active reports whether the listener is still registered.
func (sub *Subscription) Active() bool {
	return sub != nil && !sub.closed
}
