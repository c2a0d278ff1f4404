package surface

import "github.com/google/uuid"

// Rect is a cell-aligned rectangle in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
// Empty rectangles contain nothing.
func (r Rect) Contains(x, y int) bool {
	if r.Width <= 0 || r.Height <= 0 {
		return false
	}
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// IsZero reports whether the rectangle has no area.
func (r Rect) IsZero() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Node is an element of the surface tree. Bounds are absolute, so a child may
// sit outside its parent (dropdown panels do).
type Node struct {
	id       string
	name     string
	bounds   Rect
	hidden   bool
	parent   *Node
	children []*Node
	handlers map[EventKind]Listener
}

func newNode(name string) *Node {
	return &Node{
		id:   uuid.NewString(),
		name: name,
	}
}

// ID returns the node's unique identifier.
func (n *Node) ID() string {
	return n.id
}

// Name returns the debug name given at creation.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, or nil for the root and detached nodes.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in paint order.
func (n *Node) Children() []*Node {
	return n.children
}

// Bounds returns the node's screen rectangle.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// SetBounds moves or resizes the node.
func (n *Node) SetBounds(r Rect) {
	n.bounds = r
}

// SetHidden excludes the node and its subtree from hit testing.
func (n *Node) SetHidden(hidden bool) {
	n.hidden = hidden
}

// Hidden reports whether the node is excluded from hit testing.
func (n *Node) Hidden() bool {
	return n.hidden
}

// Contains reports whether other is n itself or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	if n == nil {
		return false
	}
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}
	return false
}

// On installs the node-local handler for kind, replacing any previous one.
// A nil fn removes it. Node handlers live as long as the node and run during
// the bubble phase of Dispatch, before surface-wide listeners.
func (n *Node) On(kind EventKind, fn Listener) {
	if fn == nil {
		delete(n.handlers, kind)
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[EventKind]Listener)
	}
	n.handlers[kind] = fn
}

func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	siblings := n.parent.children
	for i, child := range siblings {
		if child == n {
			n.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	n.parent = nil
}
