package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant is a strongly typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantH1
	TypographyVariantH2
	TypographyVariantH3
	TypographyVariantH4
	TypographyVariantLead
	TypographyVariantLarge
	TypographyVariantSmall
	TypographyVariantMuted
	TypographyVariantCode
	TypographyVariantBlockquote
	TypographyVariantLabel
)

// TypographyScale holds one style per typography token.
type TypographyScale struct {
	Body       lipgloss.Style
	H1         lipgloss.Style
	H2         lipgloss.Style
	H3         lipgloss.Style
	H4         lipgloss.Style
	Lead       lipgloss.Style
	Large      lipgloss.Style
	Small      lipgloss.Style
	Muted      lipgloss.Style
	Code       lipgloss.Style
	Blockquote lipgloss.Style
	Label      lipgloss.Style
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	heading := body.Bold(true)
	muted := lipgloss.NewStyle().Foreground(p.Muted.OnBase)

	return TypographyScale{
		Body:  body,
		H1:    heading.Underline(true).Foreground(p.Primary.Base),
		H2:    heading.Foreground(p.Primary.Base),
		H3:    heading,
		H4:    heading.Italic(true),
		Lead:  muted.Italic(true),
		Large: heading,
		Small: body.Faint(true),
		Muted: muted,
		Code: lipgloss.NewStyle().
			Foreground(p.Primary.Base).
			Background(p.Muted.Base).
			Padding(0, 1),
		Blockquote: muted.Italic(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(p.Primary.Base).
			PaddingLeft(1),
		Label: muted.Bold(true),
	}
}

// TypographyStyle returns the style for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantH1:
		return typo.H1
	case TypographyVariantH2:
		return typo.H2
	case TypographyVariantH3:
		return typo.H3
	case TypographyVariantH4:
		return typo.H4
	case TypographyVariantLead:
		return typo.Lead
	case TypographyVariantLarge:
		return typo.Large
	case TypographyVariantSmall:
		return typo.Small
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantBlockquote:
		return typo.Blockquote
	case TypographyVariantLabel:
		return typo.Label
	default:
		return typo.Body
	}
}

// Text renders a run of styled text.
type Text struct {
	BaseComponent
	content string
	variant TypographyVariant
}

// NewText creates body text.
func NewText(content string) *Text {
	return &Text{BaseComponent: NewBaseComponent(), content: content}
}

// View renders with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.styleOver(TypographyStyle(ctx.Theme, t.variant), ctx.Theme).Render(t.content)
}

// WithVariant sets the typography token.
func (t *Text) WithVariant(variant TypographyVariant) *Text {
	t.variant = variant
	return t
}

// WithAppliers appends theme-aware modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}

// Heading creates a heading of the given level; levels outside 1-4 clamp.
func Heading(level int, content string) *Text {
	switch {
	case level <= 1:
		return NewText(content).WithVariant(TypographyVariantH1)
	case level == 2:
		return NewText(content).WithVariant(TypographyVariantH2)
	case level == 3:
		return NewText(content).WithVariant(TypographyVariantH3)
	default:
		return NewText(content).WithVariant(TypographyVariantH4)
	}
}

// MutedText creates de-emphasised text.
func MutedText(content string) *Text {
	return NewText(content).WithVariant(TypographyVariantMuted)
}

// LeadText creates an introductory paragraph.
func LeadText(content string) *Text {
	return NewText(content).WithVariant(TypographyVariantLead)
}

// Code renders an inline code span. The default variant is inset.
func Code(content string) *Text {
	return NewText(content).WithVariant(TypographyVariantCode)
}

// Blockquote renders a quotation with an accent rule.
func Blockquote(content string) *Text {
	return NewText(content).WithVariant(TypographyVariantBlockquote)
}

// List renders bullet or numbered items.
type List struct {
	BaseComponent
	items   []string
	ordered bool
}

// UnorderedList creates a bullet list.
func UnorderedList(items ...string) *List {
	return &List{BaseComponent: NewBaseComponent(), items: items}
}

// OrderedList creates a numbered list.
func OrderedList(items ...string) *List {
	return &List{BaseComponent: NewBaseComponent(), items: items, ordered: true}
}

// View renders with the default theme.
func (l *List) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders with ctx.
func (l *List) ViewWithContext(ctx RenderContext) string {
	marker := lipgloss.NewStyle().Foreground(ctx.Theme.Palette.Primary.Base)
	body := l.ComputeStyle(ctx.Theme).Inherit(ctx.Theme.Typography.Body)

	lines := make([]string, 0, len(l.items))
	for i, item := range l.items {
		bullet := "•"
		if l.ordered {
			bullet = fmt.Sprintf("%d.", i+1)
		}
		lines = append(lines, "  "+marker.Render(bullet)+" "+body.Render(item))
	}
	return strings.Join(lines, "\n")
}
