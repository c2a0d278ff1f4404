// Package components provides theme-aware neumorphic components for terminal
// applications, rendered with lipgloss.
//
// # Neumorphism in a terminal
//
// A neumorphic element appears carved out of the surface it sits on. The
// browser version does this with paired box shadows; here each element gets
// a rounded border whose top and left edges take the light bevel shade and
// whose bottom and right edges take the dark one. Reversing the shades makes
// the element read as pressed in:
//
//	style := components.Neu(components.NeuPressed)(lipgloss.NewStyle(), theme)
//
// The bevel shades are derived from each palette colour in HCL space by
// ShadowColours. NeuStyle returns the equivalent CSS box-shadow text.
//
// # Themes
//
// Themes are immutable and passed explicitly through RenderContext:
//
//	ctx := components.ContextFor(components.DarkTheme())
//	out := card.ViewWithContext(ctx)
//
// View() renders with DefaultTheme. Variant styling (what "primary" or
// "pressed" looks like) lives in the theme's VariantRegistry.
//
// # Modifiers
//
// Components accept StyleFuncs through WithAppliers. They run after the
// variant style, so they can override it:
//
//	components.PrimaryButton("Save").WithAppliers(components.Margin(components.SpacingSizeSmall))
//
// # Interactive widgets
//
// Select and Slider live in their own packages (selectbox, slider) since
// they own pointer listeners on a surface.Surface. The form controls here
// (Switch, Checkbox, RadioGroup, Input, Textarea) hold only the state their
// host hands them.
package components
