package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// NeuShadow is the depth effect applied to an element.
type NeuShadow int

const (
	// NeuFlat is extruded from the surface.
	NeuFlat NeuShadow = iota
	// NeuPressed is carved into the surface.
	NeuPressed
	// NeuConvex is extruded with a domed face.
	NeuConvex
	// NeuConcave is extruded with a dished face.
	NeuConcave
)

var neuShadowNames = map[NeuShadow]string{
	NeuFlat:    "flat",
	NeuPressed: "pressed",
	NeuConvex:  "convex",
	NeuConcave: "concave",
}

func (n NeuShadow) String() string {
	if name, ok := neuShadowNames[n]; ok {
		return name
	}
	return "flat"
}

// ParseNeuShadow maps a shadow name to its NeuShadow.
func ParseNeuShadow(s string) (NeuShadow, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for shadow, name := range neuShadowNames {
		if name == s {
			return shadow, true
		}
	}
	return NeuFlat, false
}

// Raised reports whether the effect reads as extruded rather than inset.
func (n NeuShadow) Raised() bool {
	return n != NeuPressed
}

// NeuShadowConfig tunes the shadow geometry. Distance and Blur only affect the
// textual description; Intensity scales how far the bevel shades move away
// from the base colour.
type NeuShadowConfig struct {
	Distance  int
	Blur      int
	Intensity float64
}

// DefaultNeuShadowConfig returns distance 6, blur 12, intensity 1.
func DefaultNeuShadowConfig() NeuShadowConfig {
	return NeuShadowConfig{Distance: 6, Blur: 12, Intensity: 1}
}

func (c NeuShadowConfig) withDefaults() NeuShadowConfig {
	def := DefaultNeuShadowConfig()
	if c.Distance <= 0 {
		c.Distance = def.Distance
	}
	if c.Blur <= 0 {
		c.Blur = def.Blur
	}
	if c.Intensity <= 0 {
		c.Intensity = def.Intensity
	}
	return c
}

// NeuStyle describes the effect as a CSS box-shadow value, using the
// shadow-light and shadow-dark custom properties.
func NeuStyle(shadow NeuShadow, cfg NeuShadowConfig) string {
	cfg = cfg.withDefaults()
	d, b := cfg.Distance, cfg.Blur
	const light = "hsl(var(--shadow-light))"
	const dark = "hsl(var(--shadow-dark))"

	outer := fmt.Sprintf("%dpx %dpx %dpx %s, %dpx %dpx %dpx %s", -d, -d, b, light, d, d, b, dark)
	switch shadow {
	case NeuPressed:
		return fmt.Sprintf("inset %dpx %dpx %dpx %s, inset %dpx %dpx %dpx %s", -d, -d, b, light, d, d, b, dark)
	case NeuConvex:
		return fmt.Sprintf("%s, inset 1px 1px 2px %s, inset -1px -1px 2px %s", outer, light, dark)
	case NeuConcave:
		return fmt.Sprintf("%s, inset -1px -1px 2px %s, inset 1px 1px 2px %s", outer, light, dark)
	default:
		return outer
	}
}

// ShadowColours derives the light and dark bevel shades of base by moving its
// lightness in HCL space. Colours that do not parse as hex come back unchanged.
func ShadowColours(base lipgloss.Color, intensity float64) (lipgloss.Color, lipgloss.Color) {
	c, err := colorful.Hex(string(base))
	if err != nil {
		return base, base
	}
	if intensity <= 0 {
		intensity = 1
	}
	delta := 0.12 * intensity

	h, chroma, l := c.Hcl()
	light := colorful.Hcl(h, chroma, clampUnit(l+delta)).Clamped()
	dark := colorful.Hcl(h, chroma, clampUnit(l-delta)).Clamped()
	return lipgloss.Color(light.Hex()), lipgloss.Color(dark.Hex())
}

// Blend mixes a towards b by t in HCL space. Used for hover and face tints.
func Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		return a
	}
	return lipgloss.Color(ca.BlendHcl(cb, clampUnit(t)).Clamped().Hex())
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Neu draws a rounded border whose edges are lit for the given effect.
// Raised effects light the top and left edges; pressed effects light the
// bottom and right edges, which reads as a recess.
func Neu(shadow NeuShadow) StyleFunc {
	return NeuOn(PaletteSurface, shadow)
}

// NeuOn is Neu using the bevel shades of slot instead of the surface.
func NeuOn(slot PaletteSlot, shadow NeuShadow) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		lit, shade := cs.Light, cs.Dark
		if !shadow.Raised() {
			lit, shade = shade, lit
		}

		style := base.
			Border(theme.Borders.Rounded).
			BorderTopForeground(lit).
			BorderLeftForeground(lit).
			BorderBottomForeground(shade).
			BorderRightForeground(shade).
			BorderBackground(theme.Palette.Surface.Base)

		switch shadow {
		case NeuConvex:
			style = style.Background(Blend(cs.Base, cs.Light, 0.35))
		case NeuConcave:
			style = style.Background(Blend(cs.Base, cs.Dark, 0.35))
		}
		return style
	}
}
