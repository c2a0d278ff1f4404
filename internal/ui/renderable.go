// Package ui holds the contracts shared by every renderable piece of the library.
package ui

// Renderable is anything that can draw itself to a terminal string.
type Renderable interface {
	View() string
}
