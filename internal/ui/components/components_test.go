package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value float64
		total float64
		want  float64
	}{
		{name: "half", value: 50, total: 100, want: 50},
		{name: "custom total", value: 3, total: 4, want: 75},
		{name: "overflow clamps", value: 150, total: 100, want: 100},
		{name: "negative clamps", value: -5, total: 100, want: 0},
		{name: "zero total", value: 5, total: 0, want: 0},
		{name: "negative total", value: 5, total: -10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, ProgressPercent(tt.value, tt.total), 1e-9)
		})
	}
}

func TestProgressView(t *testing.T) {
	t.Parallel()

	t.Run("label shows clamped percentage", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(NewProgress(140).WithLabel(true).View())
		require.Contains(t, view, "100%")
	})

	t.Run("flat track fits narrow constraint", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(30).WithTrack(ProgressTrackFlat).WithWidth(50)
		view := p.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(12)))
		require.Equal(t, 12, lipgloss.Width(view))
	})
}

func TestNeuStyle(t *testing.T) {
	t.Parallel()

	cfg := DefaultNeuShadowConfig()
	flat := NeuStyle(NeuFlat, cfg)
	require.Equal(t, "-6px -6px 12px hsl(var(--shadow-light)), 6px 6px 12px hsl(var(--shadow-dark))", flat)

	pressed := NeuStyle(NeuPressed, cfg)
	require.True(t, strings.HasPrefix(pressed, "inset -6px -6px 12px"))

	convex := NeuStyle(NeuConvex, NeuShadowConfig{Distance: 2, Blur: 4})
	require.True(t, strings.HasPrefix(convex, "-2px -2px 4px"))
	require.Contains(t, convex, "inset 1px 1px 2px hsl(var(--shadow-light))")

	concave := NeuStyle(NeuConcave, cfg)
	require.Contains(t, concave, "inset -1px -1px 2px hsl(var(--shadow-light))")
}

func TestParseNeuShadow(t *testing.T) {
	t.Parallel()

	for _, shadow := range []NeuShadow{NeuFlat, NeuPressed, NeuConvex, NeuConcave} {
		parsed, ok := ParseNeuShadow(" " + strings.ToUpper(shadow.String()) + " ")
		require.True(t, ok)
		require.Equal(t, shadow, parsed)
	}

	_, ok := ParseNeuShadow("embossed")
	require.False(t, ok)
}

func TestShadowColours(t *testing.T) {
	t.Parallel()

	t.Run("light is lighter than dark", func(t *testing.T) {
		t.Parallel()
		light, dark := ShadowColours("#e0e5ec", 1)

		lc, err := colorful.Hex(string(light))
		require.NoError(t, err)
		dc, err := colorful.Hex(string(dark))
		require.NoError(t, err)

		_, _, ll := lc.Hcl()
		_, _, dl := dc.Hcl()
		require.Greater(t, ll, dl)
	})

	t.Run("intensity widens the gap", func(t *testing.T) {
		t.Parallel()
		lightLow, darkLow := ShadowColours("#808080", 0.5)
		lightHigh, darkHigh := ShadowColours("#808080", 2)

		gap := func(a, b lipgloss.Color) float64 {
			ca, _ := colorful.Hex(string(a))
			cb, _ := colorful.Hex(string(b))
			_, _, la := ca.Hcl()
			_, _, lb := cb.Hcl()
			return la - lb
		}
		require.Greater(t, gap(lightHigh, darkHigh), gap(lightLow, darkLow))
	})

	t.Run("non hex colour is returned unchanged", func(t *testing.T) {
		t.Parallel()
		light, dark := ShadowColours("212", 1)
		require.Equal(t, lipgloss.Color("212"), light)
		require.Equal(t, lipgloss.Color("212"), dark)
	})
}

func TestThemes(t *testing.T) {
	t.Parallel()

	t.Run("bevel shades are derived", func(t *testing.T) {
		t.Parallel()
		for _, theme := range []Theme{LightTheme(), DarkTheme()} {
			require.NotEmpty(t, theme.Palette.Surface.Light)
			require.NotEmpty(t, theme.Palette.Surface.Dark)
			require.NotEqual(t, theme.Palette.Surface.Light, theme.Palette.Surface.Dark)
		}
	})

	t.Run("with primary rebuilds shades", func(t *testing.T) {
		t.Parallel()
		base := LightTheme()
		custom := base.WithPrimary("#ff0000")
		require.Equal(t, lipgloss.Color("#ff0000"), custom.Palette.Primary.Base)
		require.Equal(t, lipgloss.Color("#ff0000"), custom.Palette.Ring)
		require.NotEqual(t, base.Palette.Primary.Light, custom.Palette.Primary.Light)
		require.Equal(t, lipgloss.Color("#6c63ff"), base.Palette.Primary.Base)
	})

	t.Run("every variant is registered", func(t *testing.T) {
		t.Parallel()
		theme := DefaultTheme()
		for v := ButtonVariantDefault; v <= ButtonVariantPressed; v++ {
			require.NotNil(t, theme.Variants.Get(v), "button variant %d", v)
		}
		for v := BadgeVariantDefault; v <= BadgeVariantPressed; v++ {
			require.NotNil(t, theme.Variants.Get(v), "badge variant %d", v)
		}
		for v := CardVariantFlat; v <= CardVariantInteractive; v++ {
			require.NotNil(t, theme.Variants.Get(v), "card variant %d", v)
		}
	})

	t.Run("normalize fills a zero theme", func(t *testing.T) {
		t.Parallel()
		theme := Theme{Palette: LightTheme().Palette}.Normalize()
		require.NotNil(t, theme.Variants)
		require.Equal(t, 2, PaddingValue(theme, SpacingSizeMedium))
	})

	t.Run("parse mode", func(t *testing.T) {
		t.Parallel()
		mode, ok := ParseMode("Dark")
		require.True(t, ok)
		require.Equal(t, ModeDark, mode)
		require.Equal(t, ModeDark, ThemeForMode(mode).Mode)

		_, ok = ParseMode("sepia")
		require.False(t, ok)
	})
}

func TestButton(t *testing.T) {
	t.Parallel()

	t.Run("framed variants take three rows", func(t *testing.T) {
		t.Parallel()
		view := PrimaryButton("Save").View()
		require.Contains(t, ansi.Strip(view), "Save")
		require.Equal(t, 3, lipgloss.Height(view))
	})

	t.Run("link is a single row", func(t *testing.T) {
		t.Parallel()
		view := NewButton("docs").WithVariant(ButtonVariantLink).View()
		require.Equal(t, 1, lipgloss.Height(view))
		require.Equal(t, "docs", ansi.Strip(view))
	})

	t.Run("sizes change width", func(t *testing.T) {
		t.Parallel()
		small := lipgloss.Width(NewButton("Go").WithSize(ButtonSizeSmall).View())
		large := lipgloss.Width(NewButton("Go").WithSize(ButtonSizeLarge).View())
		require.Less(t, small, large)
	})

	t.Run("pressed uses inset frame", func(t *testing.T) {
		t.Parallel()
		raised := NewButton("Hold").View()
		pressed := NewButton("Hold").WithPressed(true).View()
		require.Equal(t, ansi.Strip(raised), ansi.Strip(pressed))
	})
}

func TestBadge(t *testing.T) {
	t.Parallel()

	require.Equal(t, "( new )", ansi.Strip(NewBadge("new").View()))
	require.Equal(t, "[ beta ]", ansi.Strip(NewBadge("beta").WithVariant(BadgeVariantOutline).View()))
	require.Equal(t, " ok ", ansi.Strip(SuccessBadge("ok").View()))
}

func TestCard(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("body")).
		WithTitle("Title").
		WithDescription("desc").
		WithFooter(NewButton("OK").WithVariant(ButtonVariantLink)).
		WithWidth(30)

	view := card.View()
	plain := ansi.Strip(view)
	require.Equal(t, 30, lipgloss.Width(view))
	for _, want := range []string{"Title", "desc", "body", "OK"} {
		require.Contains(t, plain, want)
	}
	require.Less(t, strings.Index(plain, "Title"), strings.Index(plain, "body"))
	require.Less(t, strings.Index(plain, "body"), strings.Index(plain, "OK"))
}

func TestSeparator(t *testing.T) {
	t.Parallel()

	t.Run("fills constraint width", func(t *testing.T) {
		t.Parallel()
		view := NewSeparator().ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(12)))
		require.Equal(t, strings.Repeat("─", 12), ansi.Strip(view))
	})

	t.Run("vertical uses length as height", func(t *testing.T) {
		t.Parallel()
		view := VerticalSeparator(3).View()
		require.Equal(t, 3, lipgloss.Height(view))
		require.Equal(t, 1, lipgloss.Width(view))
	})
}

func TestStack(t *testing.T) {
	t.Parallel()

	t.Run("horizontal gap", func(t *testing.T) {
		t.Parallel()
		view := HStack(NewText("ab"), NewText("cd")).WithGap(2).View()
		require.Equal(t, "ab  cd", ansi.Strip(view))
	})

	t.Run("vertical gap", func(t *testing.T) {
		t.Parallel()
		view := VStack(NewText("a"), NewText("b")).WithGap(1).View()
		require.Equal(t, 3, lipgloss.Height(view))
	})

	t.Run("skips nil children", func(t *testing.T) {
		t.Parallel()
		view := VStack(nil, NewText("only")).View()
		require.Equal(t, "only", ansi.Strip(view))
	})
}

func TestTypography(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1. one\n  2. two", strings.TrimSpace(ansi.Strip(OrderedList("one", "two").View())))
	require.Contains(t, ansi.Strip(UnorderedList("x").View()), "• x")
	require.Equal(t, "h", Heading(9, "h").Content())
	require.Equal(t, " x ", ansi.Strip(Code("x").View()))
}

func TestToggles(t *testing.T) {
	t.Parallel()

	t.Run("switch toggles unless disabled", func(t *testing.T) {
		t.Parallel()
		s := NewSwitch("Wi-Fi")
		require.True(t, s.Toggle())
		require.False(t, s.Toggle())

		s.SetChecked(true).WithDisabled(true)
		require.True(t, s.Toggle())
		require.Equal(t, "switch", s.Role())
	})

	t.Run("checkbox renders mark", func(t *testing.T) {
		t.Parallel()
		c := NewCheckbox("Accept")
		require.Equal(t, "[ ] Accept", ansi.Strip(c.View()))
		c.Toggle()
		require.Equal(t, "[✓] Accept", ansi.Strip(c.View()))
	})
}

func TestRadioGroup(t *testing.T) {
	t.Parallel()

	newGroup := func() *RadioGroup {
		return NewRadioGroup(
			RadioOption{Value: "a", Label: "A", Disabled: true},
			RadioOption{Value: "b", Label: "B"},
			RadioOption{Value: "c", Label: "C", Disabled: true},
			RadioOption{Value: "d", Label: "D"},
		)
	}

	t.Run("cursor skips disabled options", func(t *testing.T) {
		t.Parallel()
		g := newGroup()
		require.True(t, g.Choose())
		require.Equal(t, "b", g.Value())

		g.Next()
		require.True(t, g.Choose())
		require.Equal(t, "d", g.Value())

		g.Next()
		require.False(t, g.Choose())
		g.Prev()
		g.Prev()
		require.True(t, g.Choose())
		require.Equal(t, "b", g.Value())
	})

	t.Run("select ignores disabled and unknown values", func(t *testing.T) {
		t.Parallel()
		g := newGroup()
		require.False(t, g.Select("a"))
		require.False(t, g.Select("zz"))
		require.Empty(t, g.Value())
		require.True(t, g.Select("d"))
		require.False(t, g.Select("d"))
	})

	t.Run("renders chosen option", func(t *testing.T) {
		t.Parallel()
		g := newGroup()
		g.Select("b")
		plain := ansi.Strip(g.View())
		require.Contains(t, plain, "(●) B")
		require.Contains(t, plain, "( ) D")
	})
}

func TestAvatar(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Ada Lovelace":        "AL",
		"grace":               "G",
		"  john ronald tolk ": "JR",
		"":                    "?",
		"-- !!":               "?",
	}
	for name, want := range tests {
		require.Equal(t, want, Initials(name), name)
	}

	view := NewAvatar("Ada Lovelace").WithVariant(AvatarVariantRing).View()
	require.Contains(t, ansi.Strip(view), "AL")
	require.Equal(t, 3, lipgloss.Height(view))
}

func TestSkeleton(t *testing.T) {
	t.Parallel()

	s := NewSkeleton(10, 2).WithVariant(SkeletonVariantFlat)
	lines := strings.Split(ansi.Strip(s.View()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, 10, lipgloss.Width(lines[0]))

	require.Nil(t, s.Update("not a tick"))
}

func TestSidebar(t *testing.T) {
	t.Parallel()

	sb := NewSidebar("Neu Morph",
		SidebarItem{Icon: "⌂", Label: "Home", Active: true},
		SidebarItem{Icon: "⚙", Label: "Settings"},
	)

	view := sb.View()
	require.Equal(t, sb.Width(), lipgloss.Width(view))
	require.Contains(t, ansi.Strip(view), "Settings")

	sb.SetCollapsed(true)
	collapsed := ansi.Strip(sb.View())
	require.NotContains(t, collapsed, "Settings")
	require.Contains(t, collapsed, "NM")
	require.Equal(t, SidebarSizeSmall.width(), sb.Width())

	sb.SetActive("Settings")
	require.False(t, sb.items[0].Active)
	require.True(t, sb.items[1].Active)
}

func TestRenderFallsBackToView(t *testing.T) {
	t.Parallel()

	require.Empty(t, Render(nil, DefaultContext()))
	require.Equal(t, "x", Render(plainRenderable("x"), DefaultContext()))
}

type plainRenderable string

func (p plainRenderable) View() string { return string(p) }
