package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Mode selects the light or dark neumorphic palette.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

// ParseMode maps "light" or "dark" to a Mode.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ModeLight, true
	case "dark":
		return ModeDark, true
	default:
		return ModeLight, false
	}
}

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// ColourSet is a semantic colour with its text colour and the two bevel
// shades used to fake extrusion: Light catches the light on the top-left
// edge, Dark falls in shadow on the bottom-right edge.
type ColourSet struct {
	Base   lipgloss.Color
	OnBase lipgloss.Color
	Light  lipgloss.Color
	Dark   lipgloss.Color
}

// Palette describes the semantic colour slots used by components. Surface is
// the shared background every neumorphic element is carved out of.
type Palette struct {
	Surface     ColourSet
	Muted       ColourSet
	Primary     ColourSet
	Secondary   ColourSet
	Success     ColourSet
	Warning     ColourSet
	Destructive ColourSet
	Border      lipgloss.Color
	Ring        lipgloss.Color
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// VariantRegistry maps component variants to their styling strategies, so a
// theme decides what "primary" or "pressed" looks like.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy registered for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling decisions. Modifiers return new themes.
type Theme struct {
	Mode       Mode
	Palette    Palette
	Shadow     NeuShadowConfig
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Variants   *VariantRegistry
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return LightTheme()
}

// LightTheme is the classic grey-blue neumorphic look.
func LightTheme() Theme {
	return NewTheme(ModeLight, Palette{
		Surface:     ColourSet{Base: "#e0e5ec", OnBase: "#31344b"},
		Muted:       ColourSet{Base: "#d1d9e6", OnBase: "#6b7280"},
		Primary:     ColourSet{Base: "#6c63ff", OnBase: "#ffffff"},
		Secondary:   ColourSet{Base: "#d1d9e6", OnBase: "#31344b"},
		Success:     ColourSet{Base: "#22c55e", OnBase: "#ffffff"},
		Warning:     ColourSet{Base: "#f59e0b", OnBase: "#31344b"},
		Destructive: ColourSet{Base: "#ef4444", OnBase: "#ffffff"},
		Border:      "#c8d0e7",
		Ring:        "#6c63ff",
	}, DefaultNeuShadowConfig())
}

// DarkTheme is the low-light variant with the same semantic slots.
func DarkTheme() Theme {
	return NewTheme(ModeDark, Palette{
		Surface:     ColourSet{Base: "#2a2d3a", OnBase: "#e0e5ec"},
		Muted:       ColourSet{Base: "#343847", OnBase: "#9ca3af"},
		Primary:     ColourSet{Base: "#8b85ff", OnBase: "#14151c"},
		Secondary:   ColourSet{Base: "#3a3f50", OnBase: "#e0e5ec"},
		Success:     ColourSet{Base: "#4ade80", OnBase: "#052e16"},
		Warning:     ColourSet{Base: "#fbbf24", OnBase: "#1f1300"},
		Destructive: ColourSet{Base: "#f87171", OnBase: "#2b0707"},
		Border:      "#3f4456",
		Ring:        "#8b85ff",
	}, DefaultNeuShadowConfig())
}

// ThemeForMode returns the built-in theme for mode.
func ThemeForMode(mode Mode) Theme {
	if mode == ModeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// NewTheme derives a complete theme from a palette and shadow settings.
// Missing bevel shades are computed from each slot's base colour.
func NewTheme(mode Mode, palette Palette, shadow NeuShadowConfig) Theme {
	t := Theme{
		Mode:    mode,
		Palette: palette,
		Shadow:  shadow.withDefaults(),
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
	}
	return t.rebuild()
}

// WithPrimary returns a copy of the theme using hex as the accent colour.
func (t Theme) WithPrimary(hex string) Theme {
	if hex == "" {
		return t
	}
	t.Palette.Primary = ColourSet{Base: lipgloss.Color(hex), OnBase: t.Palette.Primary.OnBase}
	t.Palette.Ring = lipgloss.Color(hex)
	return t.rebuild()
}

// WithShadow returns a copy of the theme with new shadow settings.
func (t Theme) WithShadow(shadow NeuShadowConfig) Theme {
	t.Shadow = shadow.withDefaults()
	for _, cs := range t.slots() {
		cs.Light, cs.Dark = "", ""
	}
	return t.rebuild()
}

// Normalize fills zero-valued fields so partially specified themes render.
func (t Theme) Normalize() Theme {
	if t.Variants == nil || spacingTableIsZero(t.Spacing.Padding) {
		return t.rebuild()
	}
	return t
}

func (t *Theme) slots() []*ColourSet {
	p := &t.Palette
	return []*ColourSet{&p.Surface, &p.Muted, &p.Primary, &p.Secondary, &p.Success, &p.Warning, &p.Destructive}
}

func (t Theme) rebuild() Theme {
	t.Shadow = t.Shadow.withDefaults()
	for _, cs := range t.slots() {
		if cs.Light == "" || cs.Dark == "" {
			light, dark := ShadowColours(cs.Base, t.Shadow.Intensity)
			if cs.Light == "" {
				cs.Light = light
			}
			if cs.Dark == "" {
				cs.Dark = dark
			}
		}
	}
	if spacingTableIsZero(t.Spacing.Padding) {
		t.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(t.Spacing.Margin) {
		t.Spacing.Margin = defaultSpacingTable()
	}
	t.Typography = defaultTypography(t.Palette)

	t.Variants = NewVariantRegistry()
	registerButtonVariants(t.Variants)
	registerBadgeVariants(t.Variants)
	registerCardVariants(t.Variants)
	return t
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 0,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

// BorderForVariant returns the border for variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding cells for size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin cells for size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}
