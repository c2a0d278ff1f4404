// Package config loads the optional YAML file that tunes the showcase: theme
// mode, accent colour, shadow geometry, slider range and select options.
package config

import (
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/selectbox"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/slider"
)

// Config is the full configuration document. Every section is optional;
// omitted fields keep the values from Default.
type Config struct {
	Theme  ThemeConfig  `yaml:"theme"`
	Slider SliderConfig `yaml:"slider"`
	Select SelectConfig `yaml:"select"`
}

// ThemeConfig picks the palette and tunes it.
type ThemeConfig struct {
	Mode    string       `yaml:"mode" validate:"theme_mode"`
	Primary string       `yaml:"primary,omitempty" validate:"omitempty,hexcolor"`
	Shadow  ShadowConfig `yaml:"shadow"`
}

// ShadowConfig mirrors components.NeuShadowConfig.
type ShadowConfig struct {
	Distance  int     `yaml:"distance" validate:"min=0,max=32"`
	Blur      int     `yaml:"blur" validate:"min=0,max=64"`
	Intensity float64 `yaml:"intensity" validate:"gte=0,lte=2"`
}

// SliderConfig seeds the showcase slider. Max must exceed Min and Value must
// lie between them.
type SliderConfig struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Step  float64 `yaml:"step" validate:"step"`
	Value float64 `yaml:"value"`
}

// SelectConfig seeds the showcase select.
type SelectConfig struct {
	Placeholder string         `yaml:"placeholder" validate:"max=64"`
	Default     string         `yaml:"default,omitempty"`
	Options     []OptionConfig `yaml:"options" validate:"dive"`
}

// OptionConfig is one select entry. Group starts a labelled section before
// the option when it differs from the previous option's group.
type OptionConfig struct {
	Value    string `yaml:"value" validate:"required,max=64"`
	Label    string `yaml:"label,omitempty" validate:"max=64"`
	Group    string `yaml:"group,omitempty" validate:"max=64"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	def := components.DefaultNeuShadowConfig()
	return Config{
		Theme: ThemeConfig{
			Mode: components.ModeLight.String(),
			Shadow: ShadowConfig{
				Distance:  def.Distance,
				Blur:      def.Blur,
				Intensity: def.Intensity,
			},
		},
		Slider: SliderConfig{Min: 0, Max: 100, Step: 1, Value: 50},
		Select: SelectConfig{
			Placeholder: "Pick a fruit",
			Options: []OptionConfig{
				{Value: "apple", Label: "Apple", Group: "Fruits"},
				{Value: "banana", Label: "Banana", Group: "Fruits"},
				{Value: "blueberry", Label: "Blueberry", Group: "Fruits"},
				{Value: "grapes", Label: "Grapes", Group: "Fruits", Disabled: true},
				{Value: "aubergine", Label: "Aubergine", Group: "Vegetables"},
				{Value: "broccoli", Label: "Broccoli", Group: "Vegetables"},
				{Value: "carrot", Label: "Carrot", Group: "Vegetables"},
			},
		},
	}
}

// BuildTheme resolves the theme section into a components.Theme. The config
// must already be valid.
func (c Config) BuildTheme() components.Theme {
	mode, _ := components.ParseMode(c.Theme.Mode)
	return components.ThemeForMode(mode).
		WithShadow(components.NeuShadowConfig{
			Distance:  c.Theme.Shadow.Distance,
			Blur:      c.Theme.Shadow.Blur,
			Intensity: c.Theme.Shadow.Intensity,
		}).
		WithPrimary(c.Theme.Primary)
}

// SliderRange returns the slider section as a slider.Range.
func (c Config) SliderRange() slider.Range {
	return slider.Range{Min: c.Slider.Min, Max: c.Slider.Max, Step: c.Slider.Step}
}

// SelectEntries lays the options out as select entries, inserting a
// separator and group label whenever the group changes.
func (c Config) SelectEntries() []selectbox.Entry {
	entries := make([]selectbox.Entry, 0, len(c.Select.Options)+4)
	group := ""
	for _, opt := range c.Select.Options {
		if opt.Group != group {
			if len(entries) > 0 {
				entries = append(entries, selectbox.Separator())
			}
			if opt.Group != "" {
				entries = append(entries, selectbox.GroupLabel(opt.Group))
			}
			group = opt.Group
		}
		if opt.Disabled {
			entries = append(entries, selectbox.DisabledItem(opt.Value, opt.Label))
		} else {
			entries = append(entries, selectbox.Item(opt.Value, opt.Label))
		}
	}
	return entries
}
