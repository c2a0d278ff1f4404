package showcase

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the showcase's own bindings. Widget bindings live with the
// widgets and are merged into the help view for whichever one has focus.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Left     key.Binding
	Right    key.Binding
	Theme    key.Binding
	Copy     key.Binding
	ScrollUp key.Binding
	ScrollDn key.Binding
	Help     key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
		Activate: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/→", "option")),
		Right:    key.NewBinding(key.WithKeys("right", "l")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "light/dark")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy values")),
		ScrollUp: key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
		ScrollDn: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpKeys adapts the showcase bindings plus the focused widget's bindings
// to help.KeyMap.
type helpKeys struct {
	global KeyMap
	widget []key.Binding
}

func (h helpKeys) ShortHelp() []key.Binding {
	out := append([]key.Binding{h.global.Next}, h.widget...)
	return append(out, h.global.Theme, h.global.Help, h.global.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.global.Next, h.global.Prev, h.global.Activate},
		h.widget,
		{h.global.Theme, h.global.Copy, h.global.ScrollUp, h.global.ScrollDn},
		{h.global.Help, h.global.Quit},
	}
}
