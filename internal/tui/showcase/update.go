package showcase

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/surface"
)

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}

	var cmds []tea.Cmd
	if cmd := m.gallery.Update(msg); cmd != nil {
		m.viewport.SetContent(m.gallery.Render(components.ContextFor(m.theme), m.width-2))
		cmds = append(cmds, cmd)
	}
	switch m.focus {
	case focusInput:
		cmds = append(cmds, m.input.Update(msg))
	case focusTextarea:
		cmds = append(cmds, m.textarea.Update(msg))
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	if key.Matches(msg, m.keys.ForceQ) {
		return m, m.quit()
	}

	switch {
	case key.Matches(msg, m.keys.Next):
		return m, m.focusCmd((m.focus + 1) % focusCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.focusCmd((m.focus + focusCount - 1) % focusCount)
	}

	if m.typing() {
		if m.focus == focusInput {
			return m, m.input.Update(msg)
		}
		return m, m.textarea.Update(msg)
	}

	if m.handleWidgetKey(msg) {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(msg, m.keys.Theme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Copy):
		m.copyValues()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.ScrollUp, m.keys.ScrollDn):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleWidgetKey gives the focused widget first refusal of msg.
func (m *Model) handleWidgetKey(msg tea.KeyMsg) bool {
	switch m.focus {
	case focusSelect:
		return m.sel.HandleKey(msg)
	case focusSlider:
		return m.sl.HandleKey(msg)
	case focusSwitch:
		if key.Matches(msg, m.keys.Activate) {
			m.toggle.Toggle()
			return true
		}
	case focusCheckbox:
		if key.Matches(msg, m.keys.Activate) {
			m.check.Toggle()
			return true
		}
	case focusRadio:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.radio.Prev()
		case key.Matches(msg, m.keys.Right):
			m.radio.Next()
		case key.Matches(msg, m.keys.Activate):
			if m.radio.Choose() {
				m.log.Debug("size changed", "value", m.radio.Value())
			}
		default:
			return false
		}
		return true
	case focusReset:
		if key.Matches(msg, m.keys.Activate) {
			m.resetValues()
			return true
		}
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd
	}

	ev, ok := surface.FromMouse(msg)
	if !ok {
		return nil
	}
	ev = m.surface.Dispatch(ev)
	if ev.Kind != surface.PointerDown {
		return nil
	}

	switch {
	case m.sel.IsOpen():
		if m.focus != focusSelect {
			m.setFocus(focusSelect)
		}
		m.log.Debug("select opened by pointer", "x", ev.X, "y", ev.Y)
	case m.sl.Dragging():
		if m.focus != focusSlider {
			m.setFocus(focusSlider)
		}
		m.log.Debug("slider drag started", "x", ev.X)
	}
	return nil
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Dispose()
	return tea.Quit
}

// widgetKeys lists the focused widget's bindings for the help line.
func (m *Model) widgetKeys() []key.Binding {
	switch m.focus {
	case focusSelect:
		return m.sel.KeyMap().ShortHelp()
	case focusSlider:
		return m.sl.KeyMap().ShortHelp()
	case focusRadio:
		return []key.Binding{m.keys.Left, m.keys.Activate}
	case focusSwitch, focusCheckbox, focusReset:
		return []key.Binding{m.keys.Activate}
	}
	return nil
}
