package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tag returns a StyleFunc that appends name to the style's value, so tests can
// read back the order functions ran in.
func tag(name string) StyleFunc {
	return func(s lipgloss.Style, _ Theme) lipgloss.Style {
		return s.SetString(s.Value() + name)
	}
}

func TestComposeRunsInOrder(t *testing.T) {
	t.Parallel()

	style := Compose(tag("a"), tag("b"), tag("c")).Apply(lipgloss.NewStyle(), DefaultTheme())
	require.Equal(t, "abc", style.Value())
	require.Equal(t, "", Compose().Apply(lipgloss.NewStyle(), DefaultTheme()).Value())
}

func TestAddAppliers(t *testing.T) {
	t.Parallel()

	t.Run("appends after existing", func(t *testing.T) {
		t.Parallel()
		var b BaseComponent
		b.AddAppliers(tag("a"))
		b.AddAppliers(tag("b"))
		require.Equal(t, "ab", b.ComputeStyle(DefaultTheme()).Value())
	})

	t.Run("set replaces", func(t *testing.T) {
		t.Parallel()
		b := NewBaseComponent()
		b.AddAppliers(tag("a"))
		b.SetAppliers(tag("z"))
		require.Equal(t, "z", b.ComputeStyle(DefaultTheme()).Value())
	})

	t.Run("shared prefix is not aliased", func(t *testing.T) {
		t.Parallel()
		shared := make(Styles, 1, 4)
		shared[0] = tag("x")

		var one, two BaseComponent
		one.strategy = shared
		two.strategy = shared
		one.AddAppliers(tag("1"))
		two.AddAppliers(tag("2"))
		assert.Equal(t, "x1", one.ComputeStyle(DefaultTheme()).Value())
		assert.Equal(t, "x2", two.ComputeStyle(DefaultTheme()).Value())
	})

	t.Run("wraps a foreign strategy", func(t *testing.T) {
		t.Parallel()
		var b BaseComponent
		b.strategy = upper{}
		b.AddAppliers(tag("!"))
		b.SetStyle(lipgloss.NewStyle().SetString("x"))
		require.Equal(t, "X!", b.ComputeStyle(DefaultTheme()).Value())
	})
}

type upper struct{}

func (upper) Apply(s lipgloss.Style, _ Theme) lipgloss.Style {
	return s.SetString(map[string]string{"x": "X"}[s.Value()])
}

func TestConstraintsInside(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    Constraints
		frame int
		want  Constraints
	}{
		{name: "unbounded stays unbounded", in: Constraints{}, frame: 4, want: Constraints{}},
		{name: "subtracts frame", in: WithMaxWidth(20), frame: 4, want: WithMaxWidth(16)},
		{name: "never below one", in: WithMaxWidth(3), frame: 4, want: WithMaxWidth(1)},
		{name: "height untouched", in: Constraints{MaxWidth: 10, MaxHeight: 5}, frame: 2, want: Constraints{MaxWidth: 8, MaxHeight: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.in.Inside(tt.frame))
		})
	}
}

func TestContainerNarrowsChildren(t *testing.T) {
	t.Parallel()

	t.Run("inherited width loses the frame", func(t *testing.T) {
		t.Parallel()
		c := NewContainer(NewSeparator()).WithPadding(SymmetricSpacing(0, 2))
		view := c.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(20)))
		require.Equal(t, 20, lipgloss.Width(view))
		require.Equal(t, "  "+strings.Repeat("─", 16)+"  ", ansi.Strip(view))
	})

	t.Run("fixed width wins", func(t *testing.T) {
		t.Parallel()
		c := NewContainer(NewSeparator()).WithPadding(SymmetricSpacing(0, 1)).WithWidth(12)
		view := c.ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(40)))
		require.Equal(t, " "+strings.Repeat("─", 10)+" ", ansi.Strip(view))
	})
}
