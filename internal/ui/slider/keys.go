package slider

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the slider's keyboard bindings. It satisfies help.KeyMap.
type KeyMap struct {
	Decrease key.Binding
	Increase key.Binding
	Min      key.Binding
	Max      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Decrease: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Increase: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Min:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "minimum")),
		Max:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "maximum")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Decrease, k.Increase, k.Min, k.Max}}
}
