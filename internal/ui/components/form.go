package components

import (
	"strings"

	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// FieldLayout places a form field's label above or beside its control.
type FieldLayout int

const (
	FieldLayoutVertical FieldLayout = iota
	FieldLayoutHorizontal
)

// minLabelWidth is the label column width of a horizontal field.
const minLabelWidth = 16

// FormField pairs a control with its label, help text and validation error.
type FormField struct {
	BaseComponent
	label       string
	description string
	err         string
	required    bool
	layout      FieldLayout
	control     ui.Renderable
}

// NewFormField creates a vertical field around control. control may be nil.
func NewFormField(label string, control ui.Renderable) *FormField {
	return &FormField{BaseComponent: NewBaseComponent(), label: label, control: control}
}

// View renders with the default theme.
func (f *FormField) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label, the control and then either the error or
// the description. The description is hidden while there is an error.
func (f *FormField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme

	var column []string
	if f.control != nil {
		column = append(column, Render(f.control, ctx))
	}
	switch {
	case f.err != "":
		column = append(column, lipgloss.NewStyle().Foreground(theme.Palette.Destructive.Base).Render(f.err))
	case f.description != "":
		column = append(column, theme.Typography.Muted.Render(f.description))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, column...)

	label := f.renderLabel(theme)
	var out string
	switch {
	case label == "":
		out = body
	case f.layout == FieldLayoutHorizontal:
		width := max(minLabelWidth, lipgloss.Width(label)+1)
		out = lipgloss.JoinHorizontal(lipgloss.Center, lipgloss.NewStyle().Width(width).Render(label), body)
	default:
		out = lipgloss.JoinVertical(lipgloss.Left, label, body)
	}
	return f.ComputeStyle(theme).Render(out)
}

func (f *FormField) renderLabel(theme Theme) string {
	if f.label == "" {
		return ""
	}
	label := theme.Typography.Label.Render(f.label)
	if f.required {
		label += lipgloss.NewStyle().Foreground(theme.Palette.Destructive.Base).Bold(true).Render(" *")
	}
	return label
}

// WithDescription sets the help text shown under the control.
func (f *FormField) WithDescription(description string) *FormField {
	f.description = description
	return f
}

// WithError sets the validation message. An empty string clears it.
func (f *FormField) WithError(err string) *FormField {
	f.err = err
	return f
}

// WithRequired marks the label with an asterisk.
func (f *FormField) WithRequired(required bool) *FormField {
	f.required = required
	return f
}

// WithLayout sets where the label goes.
func (f *FormField) WithLayout(layout FieldLayout) *FormField {
	f.layout = layout
	return f
}

// WithAppliers appends style modifiers.
func (f *FormField) WithAppliers(appliers ...StyleFunc) *FormField {
	f.AddAppliers(appliers...)
	return f
}

// Error returns the validation message.
func (f *FormField) Error() string {
	return f.err
}

// FormVariant selects the spacing between a form's rows.
type FormVariant int

const (
	FormVariantDefault FormVariant = iota
	FormVariantCompact
	FormVariantRelaxed
)

// gap is the number of blank rows between children.
func (v FormVariant) gap() int {
	switch v {
	case FormVariantCompact:
		return 1
	case FormVariantRelaxed:
		return 3
	default:
		return 2
	}
}

// Form stacks fields, sections and actions vertically.
type Form struct {
	BaseComponent
	children []ui.Renderable
	variant  FormVariant
}

// NewForm creates a form with the default spacing.
func NewForm(children ...ui.Renderable) *Form {
	return &Form{BaseComponent: NewBaseComponent(), children: children}
}

// View renders with the default theme.
func (f *Form) View() string {
	return f.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (f *Form) ViewWithContext(ctx RenderContext) string {
	rows := VStack(f.children...).WithGap(f.variant.gap())
	return f.ComputeStyle(ctx.Theme).Render(rows.ViewWithContext(ctx))
}

// WithVariant sets the spacing.
func (f *Form) WithVariant(variant FormVariant) *Form {
	f.variant = variant
	return f
}

// Add appends children.
func (f *Form) Add(children ...ui.Renderable) *Form {
	f.children = append(f.children, children...)
	return f
}

// Role is "form".
func (f *Form) Role() string {
	return "form"
}

// FormSection groups related fields under an optional legend.
type FormSection struct {
	BaseComponent
	title       string
	description string
	children    []ui.Renderable
}

// NewFormSection creates a section around children.
func NewFormSection(title string, children ...ui.Renderable) *FormSection {
	return &FormSection{BaseComponent: NewBaseComponent(), title: title, children: children}
}

// View renders with the default theme.
func (s *FormSection) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the legend then the children one blank row apart.
func (s *FormSection) ViewWithContext(ctx RenderContext) string {
	var legend []ui.Renderable
	if s.title != "" {
		legend = append(legend, Heading(3, s.title))
	}
	if s.description != "" {
		legend = append(legend, MutedText(s.description))
	}

	rows := make([]ui.Renderable, 0, len(s.children)+1)
	if len(legend) > 0 {
		rows = append(rows, VStack(legend...))
	}
	rows = append(rows, s.children...)
	return s.ComputeStyle(ctx.Theme).Render(VStack(rows...).WithGap(1).ViewWithContext(ctx))
}

// WithDescription sets the muted line under the legend.
func (s *FormSection) WithDescription(description string) *FormSection {
	s.description = description
	return s
}

// Role is "group".
func (s *FormSection) Role() string {
	return "group"
}

// ActionsAlign positions a form's buttons along its width.
type ActionsAlign int

const (
	ActionsAlignRight ActionsAlign = iota
	ActionsAlignLeft
	ActionsAlignCenter
	// ActionsAlignBetween pushes the first and last buttons to the edges.
	ActionsAlignBetween
)

const actionsGap = 2

// FormActions lays out a row of buttons at the foot of a form.
type FormActions struct {
	BaseComponent
	children []ui.Renderable
	align    ActionsAlign
	width    int
}

// NewFormActions creates a right-aligned row.
func NewFormActions(children ...ui.Renderable) *FormActions {
	return &FormActions{BaseComponent: NewBaseComponent(), children: children}
}

// View renders with the default theme.
func (a *FormActions) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the row one blank line below the content above it.
// Without a width from WithWidth or the context, alignment has no room to act
// and the buttons are packed to the left.
func (a *FormActions) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(a.children))
	for _, child := range a.children {
		if view := Render(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	row := a.place(views, a.resolveWidth(ctx))
	return a.ComputeStyle(ctx.Theme).PaddingTop(1).Render(row)
}

func (a *FormActions) resolveWidth(ctx RenderContext) int {
	switch {
	case a.width > 0:
		return a.width
	case ctx.Constraints.MaxWidth > 0:
		return ctx.Constraints.MaxWidth
	default:
		return ctx.ParentWidth
	}
}

func (a *FormActions) place(views []string, width int) string {
	if len(views) == 0 {
		return ""
	}
	used := 0
	for _, v := range views {
		used += lipgloss.Width(v)
	}
	free := width - used - actionsGap*(len(views)-1)

	if a.align == ActionsAlignBetween && len(views) > 1 && free > 0 {
		slots := len(views) - 1
		parts := make([]string, 0, len(views)*2-1)
		for i, v := range views {
			if i > 0 {
				n := actionsGap + free/slots
				if i <= free%slots {
					n++
				}
				parts = append(parts, strings.Repeat(" ", n))
			}
			parts = append(parts, v)
		}
		return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	}

	parts := make([]string, 0, len(views)*2-1)
	for i, v := range views {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", actionsGap))
		}
		parts = append(parts, v)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	if free <= 0 {
		return row
	}
	switch a.align {
	case ActionsAlignLeft, ActionsAlignBetween:
		return lipgloss.PlaceHorizontal(width, lipgloss.Left, row)
	case ActionsAlignCenter:
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	default:
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, row)
	}
}

// WithAlign sets where the buttons sit.
func (a *FormActions) WithAlign(align ActionsAlign) *FormActions {
	a.align = align
	return a
}

// WithWidth fixes the row width.
func (a *FormActions) WithWidth(width int) *FormActions {
	a.width = width
	return a
}
