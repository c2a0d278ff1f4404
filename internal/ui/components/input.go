package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// InputVariant selects the field's depth.
type InputVariant int

const (
	// InputVariantDefault is a deep inset well.
	InputVariantDefault InputVariant = iota
	// InputVariantFlat is raised from the surface.
	InputVariantFlat
	// InputVariantMinimal is a plain underline.
	InputVariantMinimal
)

func (v InputVariant) frame(theme Theme, focused bool) lipgloss.Style {
	style := lipgloss.NewStyle().Background(theme.Palette.Surface.Base).Padding(0, 1)
	switch v {
	case InputVariantFlat:
		style = Neu(NeuFlat)(style, theme)
	case InputVariantMinimal:
		style = style.
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(theme.Palette.Surface.Dark).
			BorderBackground(theme.Palette.Surface.Base)
	default:
		style = Neu(NeuPressed)(style, theme)
	}
	if focused {
		style = style.BorderForeground(theme.Palette.Ring)
	}
	return style
}

// Input is a single-line text field backed by bubbles/textinput.
type Input struct {
	BaseComponent
	model   textinput.Model
	variant InputVariant
	width   int
}

// NewInput creates an inset field.
func NewInput(placeholder string) *Input {
	m := textinput.New()
	m.Prompt = ""
	m.Placeholder = placeholder
	return &Input{BaseComponent: NewBaseComponent(), model: m, width: 24}
}

// Update forwards key input to the field while focused.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	return cmd
}

// View renders with the default theme.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	frame := i.styleOver(i.variant.frame(theme, i.model.Focused()), theme)

	m := i.model
	m.Width = i.width - frame.GetHorizontalFrameSize() - 1
	if m.Width < 1 {
		m.Width = 1
	}
	m.TextStyle = theme.Typography.Body.Background(theme.Palette.Surface.Base)
	m.PlaceholderStyle = theme.Typography.Muted.Background(theme.Palette.Surface.Base)
	m.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Palette.Ring)
	return frame.Width(i.width - frame.GetHorizontalBorderSize()).Render(m.View())
}

// Focus starts accepting input and returns the cursor blink command.
func (i *Input) Focus() tea.Cmd {
	return i.model.Focus()
}

// Blur stops accepting input.
func (i *Input) Blur() {
	i.model.Blur()
}

// Focused reports whether the field accepts input.
func (i *Input) Focused() bool {
	return i.model.Focused()
}

// Value returns the current text.
func (i *Input) Value() string {
	return i.model.Value()
}

// SetValue replaces the text.
func (i *Input) SetValue(v string) {
	i.model.SetValue(v)
}

// WithVariant sets the depth.
func (i *Input) WithVariant(variant InputVariant) *Input {
	i.variant = variant
	return i
}

// WithWidth sets the outer width.
func (i *Input) WithWidth(width int) *Input {
	i.width = width
	return i
}

// Role is "textbox".
func (i *Input) Role() string {
	return "textbox"
}

// Textarea is a multi-line text field backed by bubbles/textarea.
type Textarea struct {
	BaseComponent
	model   textarea.Model
	variant InputVariant
}

// NewTextarea creates an inset area of the given size in cells.
func NewTextarea(placeholder string, width, height int) *Textarea {
	m := textarea.New()
	m.Placeholder = placeholder
	m.ShowLineNumbers = false
	m.Prompt = ""
	m.SetWidth(width)
	m.SetHeight(height)
	t := &Textarea{BaseComponent: NewBaseComponent(), model: m}
	// The model keeps a pointer to its active style; re-point it at the
	// struct's copy so style changes below take effect.
	t.model.Blur()
	return t
}

// Update forwards key input to the area while focused.
func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return cmd
}

// View renders with the default theme.
func (t *Textarea) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (t *Textarea) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	surface := theme.Palette.Surface.Base
	styles := textarea.Style{
		Base:        lipgloss.NewStyle().Background(surface),
		CursorLine:  lipgloss.NewStyle().Background(surface),
		EndOfBuffer: lipgloss.NewStyle().Foreground(surface),
		Placeholder: theme.Typography.Muted.Background(surface),
		Text:        theme.Typography.Body.Background(surface),
	}
	t.model.FocusedStyle = styles
	t.model.BlurredStyle = styles
	frame := t.styleOver(t.variant.frame(theme, t.model.Focused()), theme)
	return frame.Render(t.model.View())
}

// Focus starts accepting input.
func (t *Textarea) Focus() tea.Cmd {
	return t.model.Focus()
}

// Blur stops accepting input.
func (t *Textarea) Blur() {
	t.model.Blur()
}

// Focused reports whether the area accepts input.
func (t *Textarea) Focused() bool {
	return t.model.Focused()
}

// Value returns the current text.
func (t *Textarea) Value() string {
	return t.model.Value()
}

// SetValue replaces the text.
func (t *Textarea) SetValue(v string) {
	t.model.SetValue(v)
}

// WithVariant sets the depth.
func (t *Textarea) WithVariant(variant InputVariant) *Textarea {
	t.variant = variant
	return t
}
