// Package showcase is the interactive demo of the component library: a
// Bubble Tea program with a live select and slider on a pointer surface,
// the form controls, and a scrolling gallery of every component variant.
package showcase

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/neumorph/internal/config"
	"github.com/alexisbeaulieu97/neumorph/internal/logger"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/selectbox"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/slider"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/surface"
)

// Screen positions of the fixed controls area. The gallery viewport starts
// at fixedRows.
const (
	selectX     = 2
	sliderX     = 34
	controlsY   = 4
	progressY   = 7
	formsY      = 10
	actionsY    = 14
	selectWidth = 28
	sliderWidth = 32
	fixedRows   = 20

	minWidth  = 68
	minHeight = 24
)

type focusTarget int

const (
	focusSelect focusTarget = iota
	focusSlider
	focusInput
	focusTextarea
	focusSwitch
	focusCheckbox
	focusRadio
	focusReset
	focusCount
)

// Options configures a Model.
type Options struct {
	Config config.Config
	Logger *logger.Logger
	// Clipboard receives the text copied with the copy key. It defaults to
	// the system clipboard.
	Clipboard func(string) error
}

// Model is the showcase's Bubble Tea model. It is used through a pointer
// because the widgets call back into it.
type Model struct {
	cfg   config.Config
	theme components.Theme
	log   *logger.Logger
	clip  func(string) error
	keys  KeyMap
	help  help.Model

	surface *surface.Surface
	sel     *selectbox.Select
	sl      *slider.Slider

	choice   string
	level    float64
	progress *components.Progress
	input    *components.Input
	textarea *components.Textarea
	toggle   *components.Switch
	check    *components.Checkbox
	radio    *components.RadioGroup
	reset    *components.Button
	gallery  *Gallery
	viewport viewport.Model

	toggleNode *surface.Node
	checkNode  *surface.Node
	resetNode  *surface.Node
	release    *surface.Subscription

	focus    focusTarget
	status   string
	width    int
	height   int
	quitting bool
}

// New builds the showcase from opts. The config must already be valid.
func New(opts Options) *Model {
	cfg := opts.Config
	m := &Model{
		cfg:      cfg,
		theme:    cfg.BuildTheme(),
		log:      opts.Logger,
		clip:     opts.Clipboard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		surface:  surface.New(),
		choice:   cfg.Select.Default,
		progress: components.NewProgress(0).WithWidth(sliderWidth).WithLabel(true),
		input:    components.NewInput("Your name").WithWidth(selectWidth - 2),
		textarea: components.NewTextarea("Tell us about your day", selectWidth-2, 2),
		toggle:   components.NewSwitch("Notifications"),
		check:    components.NewCheckbox("Accept terms"),
		radio: components.NewRadioGroup(
			components.RadioOption{Value: "s", Label: "S"},
			components.RadioOption{Value: "m", Label: "M"},
			components.RadioOption{Value: "l", Label: "L"},
			components.RadioOption{Value: "xl", Label: "XL", Disabled: true},
		).WithOrientation(components.Horizontal),
		reset:    components.NewButton("Reset").WithVariant(components.ButtonVariantPrimary),
		gallery:  NewGallery(),
		viewport: viewport.New(80, 4),
		width:    80,
		height:   minHeight,
	}
	if m.clip == nil {
		m.clip = clipboard.WriteAll
	}
	m.radio.Select("m")
	m.viewport.MouseWheelEnabled = true

	// Nodes created later win hit tests, so the select comes last: its open
	// panel paints over everything below it.
	m.toggleNode = m.surface.NewNode(nil, "showcase.switch")
	m.toggleNode.On(surface.PointerDown, func(surface.PointerEvent) {
		m.setFocus(focusSwitch)
		m.toggle.Toggle()
	})
	m.checkNode = m.surface.NewNode(nil, "showcase.checkbox")
	m.checkNode.On(surface.PointerDown, func(surface.PointerEvent) {
		m.setFocus(focusCheckbox)
		m.check.Toggle()
	})
	m.resetNode = m.surface.NewNode(nil, "showcase.reset")
	m.resetNode.On(surface.PointerDown, m.pressReset)

	m.sl = slider.New(m.surface, nil, slider.Config{
		Value:         cfg.Slider.Value,
		Range:         cfg.SliderRange(),
		Width:         sliderWidth,
		OnValueChange: m.levelChanged,
	})
	m.level = m.sl.Value()
	m.progress.SetValue(m.sl.Percentage())

	m.sel = selectbox.New(m.surface, nil, selectbox.Config{
		Value:         &m.choice,
		OnValueChange: m.choiceChanged,
		Placeholder:   cfg.Select.Placeholder,
		Width:         selectWidth,
		Entries:       cfg.SelectEntries(),
	})

	m.layout()
	m.setFocus(focusSelect)
	return m
}

// Init starts the gallery animation.
func (m *Model) Init() tea.Cmd {
	return m.gallery.Init()
}

// Choice returns the select's value.
func (m *Model) Choice() string {
	return m.choice
}

// Level returns the slider's value.
func (m *Model) Level() float64 {
	return m.level
}

// Theme returns the active theme.
func (m *Model) Theme() components.Theme {
	return m.theme
}

// Status returns the transient status line.
func (m *Model) Status() string {
	return m.status
}

func (m *Model) choiceChanged(v string) {
	m.log.Debug("select value changed", "from", m.choice, "to", v)
	m.choice = v
	m.sel.SetValue(v)
}

func (m *Model) levelChanged(v float64) {
	if v != m.level {
		m.log.Debug("slider value changed", "value", v, "dragging", m.sl.Dragging())
	}
	m.level = v
	m.sl.SetValue(v)
	m.progress.SetValue(m.sl.Percentage())
}

// pressReset holds the button down until the pointer is released; releasing
// over the button resets the demo values.
func (m *Model) pressReset(surface.PointerEvent) {
	if m.release.Active() {
		return
	}
	m.setFocus(focusReset)
	m.reset.WithPressed(true)
	m.release = m.surface.Listen(surface.PointerUp, func(ev surface.PointerEvent) {
		m.reset.WithPressed(false)
		m.release.Close()
		if m.resetNode.Contains(ev.Target) {
			m.resetValues()
		}
	})
}

func (m *Model) resetValues() {
	if def := m.cfg.Select.Default; def != "" {
		m.choiceChanged(def)
	} else {
		m.choice = ""
		m.sel.ClearValue()
	}
	m.levelChanged(slider.Quantize(m.cfg.Slider.Value, m.sl.Range()))
	m.status = "values reset"
	m.log.Debug("values reset")
}

func (m *Model) copyValues() {
	text := fmt.Sprintf("choice=%s level=%g", m.choice, m.level)
	if err := m.clip(text); err != nil {
		m.log.Error(err, "copy to clipboard")
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied " + text
}

func (m *Model) toggleTheme() {
	next := components.ModeDark
	if m.theme.Mode == components.ModeDark {
		next = components.ModeLight
	}
	cfg := m.cfg
	cfg.Theme.Mode = next.String()
	m.theme = cfg.BuildTheme()
	m.layout()
	m.log.Debug("theme changed", "mode", next.String())
}

// layout positions every pointer target for the current theme.
func (m *Model) layout() {
	ctx := components.ContextFor(m.theme)
	m.surface.Root().SetBounds(surface.Rect{Width: m.width, Height: m.height})
	m.sel.Layout(selectX, controlsY)
	m.sl.Layout(sliderX, controlsY)
	m.toggleNode.SetBounds(surface.Rect{X: sliderX, Y: formsY, Width: sliderWidth, Height: 1})
	m.checkNode.SetBounds(surface.Rect{X: sliderX, Y: formsY + 1, Width: sliderWidth, Height: 1})
	resetView := m.reset.ViewWithContext(ctx)
	m.resetNode.SetBounds(surface.Rect{
		X: sliderX, Y: actionsY,
		Width: lipgloss.Width(resetView), Height: lipgloss.Height(resetView),
	})

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-fixedRows-1)
	m.viewport.SetContent(m.gallery.Render(ctx, m.width-2))
}

func (m *Model) setFocus(f focusTarget) {
	m.focus = f
	m.sel.SetFocused(f == focusSelect)
	m.sl.SetFocused(f == focusSlider)
	m.toggle.SetFocused(f == focusSwitch)
	m.check.SetFocused(f == focusCheckbox)
	m.radio.SetFocused(f == focusRadio)
	m.reset.WithFocused(f == focusReset)
	m.input.Blur()
	m.textarea.Blur()
}

// focusCmd moves focus and returns the text field's cursor command, if any.
func (m *Model) focusCmd(f focusTarget) tea.Cmd {
	m.setFocus(f)
	switch f {
	case focusInput:
		return m.input.Focus()
	case focusTextarea:
		return m.textarea.Focus()
	}
	return nil
}

func (m *Model) typing() bool {
	return m.focus == focusInput || m.focus == focusTextarea
}

// Dispose releases the widgets' surface registrations.
func (m *Model) Dispose() {
	m.release.Close()
	m.sel.Dispose()
	m.sl.Dispose()
}
