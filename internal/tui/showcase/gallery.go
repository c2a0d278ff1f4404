package showcase

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/neumorph/internal/ui"
	"github.com/alexisbeaulieu97/neumorph/internal/ui/components"
)

// Section is one titled block of the gallery.
type Section struct {
	Title string
	Body  ui.Renderable
}

// Gallery renders every presentational component in each of its variants.
// It owns the few stateful pieces (the skeleton shimmer) so the showcase can
// animate them; the gallery command renders it once.
type Gallery struct {
	skeleton *components.Skeleton
}

// NewGallery creates a gallery.
func NewGallery() *Gallery {
	return &Gallery{skeleton: components.NewSkeleton(24, 3)}
}

// Init starts the skeleton shimmer.
func (g *Gallery) Init() tea.Cmd {
	return g.skeleton.Tick
}

// Update forwards animation ticks.
func (g *Gallery) Update(msg tea.Msg) tea.Cmd {
	return g.skeleton.Update(msg)
}

// Sections lists the gallery in display order.
func (g *Gallery) Sections() []Section {
	return []Section{
		{Title: "Buttons", Body: buttons()},
		{Title: "Badges", Body: badges()},
		{Title: "Cards", Body: cards()},
		{Title: "Typography", Body: typography()},
		{Title: "Separators", Body: separators()},
		{Title: "Progress", Body: progressBars()},
		{Title: "Avatars & Skeletons", Body: components.HStack(avatars(), g.skeleton).WithGap(4)},
		{Title: "Sidebar", Body: sidebars()},
		{Title: "Forms", Body: forms()},
		{Title: "File upload", Body: uploads()},
		{Title: "Shadows", Body: shadows()},
	}
}

// Render draws every section under a heading and a rule of the given width.
func (g *Gallery) Render(ctx components.RenderContext, width int) string {
	if width <= 0 {
		width = 80
	}
	ctx = ctx.WithConstraints(components.WithMaxWidth(width))

	blocks := make([]string, 0, len(g.Sections()))
	for _, s := range g.Sections() {
		head := components.VStack(
			components.Heading(2, s.Title),
			components.NewSeparator().WithVariant(components.SeparatorVariantRaised).WithLength(width),
		)
		blocks = append(blocks, lipgloss.JoinVertical(lipgloss.Left,
			components.Render(head, ctx),
			components.Render(s.Body, ctx),
		))
	}
	return strings.Join(blocks, "\n\n")
}

func buttons() ui.Renderable {
	variants := components.HStack(
		components.NewButton("Default"),
		components.PrimaryButton("Primary"),
		components.SecondaryButton("Secondary"),
		components.DestructiveButton("Delete"),
		components.NewButton("Success").WithVariant(components.ButtonVariantSuccess),
		components.NewButton("Warning").WithVariant(components.ButtonVariantWarning),
	).WithGap(1)

	quiet := components.HStack(
		components.NewButton("Outline").WithVariant(components.ButtonVariantOutline),
		components.GhostButton("Ghost"),
		components.NewButton("Link").WithVariant(components.ButtonVariantLink),
		components.NewButton("Flat").WithVariant(components.ButtonVariantFlat),
		components.NewButton("Pressed").WithVariant(components.ButtonVariantPressed),
	).WithGap(1).WithCrossAlign(components.CrossCenter)

	sizes := components.HStack(
		components.PrimaryButton("Small").WithSize(components.ButtonSizeSmall),
		components.PrimaryButton("Default"),
		components.PrimaryButton("Large").WithSize(components.ButtonSizeLarge),
		components.NewButton("+").WithSize(components.ButtonSizeIcon),
		components.PrimaryButton("Disabled").WithDisabled(true),
		components.NewButton("Focused").WithFocused(true),
	).WithGap(1)

	return components.VStack(variants, quiet, sizes)
}

func badges() ui.Renderable {
	return components.HStack(
		components.NewBadge("new"),
		components.NewBadge("primary").WithVariant(components.BadgeVariantPrimary),
		components.NewBadge("secondary").WithVariant(components.BadgeVariantSecondary),
		components.SuccessBadge("live"),
		components.WarningBadge("beta"),
		components.DestructiveBadge("deprecated"),
		components.NewBadge("outline").WithVariant(components.BadgeVariantOutline),
		components.NewBadge("pressed").WithVariant(components.BadgeVariantPressed),
	).WithGap(1)
}

func cards() ui.Renderable {
	card := func(variant components.CardVariant, title string) ui.Renderable {
		return components.NewCard(components.NewText("Soft edges, no lines.")).
			WithTitle(title).
			WithDescription("card variant").
			WithFooter(components.MutedText("footer")).
			WithVariant(variant).
			WithWidth(26)
	}

	hovered := components.NewCard(components.NewText("Hover sinks it.")).
		WithTitle("Interactive").
		WithDescription("hovered").
		WithVariant(components.CardVariantInteractive).
		WithWidth(26)
	hovered.SetHovered(true)

	return components.HStack(
		card(components.CardVariantFlat, "Flat"),
		card(components.CardVariantPressed, "Pressed"),
		card(components.CardVariantConvex, "Convex"),
		hovered,
	).WithGap(1)
}

func typography() ui.Renderable {
	return components.VStack(
		components.Heading(1, "Heading one"),
		components.Heading(2, "Heading two"),
		components.Heading(3, "Heading three"),
		components.Heading(4, "Heading four"),
		components.LeadText("Lead text introduces a section."),
		components.NewText("Body text is the default."),
		components.NewText("Large text").WithVariant(components.TypographyVariantLarge),
		components.NewText("Small text").WithVariant(components.TypographyVariantSmall),
		components.MutedText("Muted text recedes."),
		components.Code("go run ./cmd/neumorph"),
		components.Blockquote("Depth without borders."),
		components.HStack(
			components.UnorderedList("raised", "inset", "convex"),
			components.OrderedList("press", "drag", "release"),
		).WithGap(4),
	)
}

func separators() ui.Renderable {
	return components.VStack(
		components.NewSeparator().WithLength(40),
		components.NewSeparator().WithVariant(components.SeparatorVariantRaised).WithLength(40),
		components.NewSeparator().WithVariant(components.SeparatorVariantFlat).WithLength(40),
		components.HStack(
			components.NewText("left"),
			components.VerticalSeparator(1),
			components.NewText("middle"),
			components.VerticalSeparator(1),
			components.NewText("right"),
		).WithGap(1),
	)
}

func progressBars() ui.Renderable {
	return components.VStack(
		components.NewProgress(25).WithWidth(30).WithLabel(true),
		components.NewProgress(50).WithWidth(30).WithLabel(true).WithIndicator(components.ProgressIndicatorSuccess),
		components.NewProgress(75).WithWidth(30).WithLabel(true).WithIndicator(components.ProgressIndicatorWarning),
		components.NewProgress(90).WithWidth(30).WithLabel(true).WithIndicator(components.ProgressIndicatorDestructive),
		components.NewProgress(3).WithMax(4).WithWidth(30).WithLabel(true).WithTrack(components.ProgressTrackFlat),
	)
}

func avatars() ui.Renderable {
	return components.HStack(
		components.NewAvatar("Ada Lovelace"),
		components.NewAvatar("Grace Hopper").WithVariant(components.AvatarVariantPressed),
		components.NewAvatar("Alan Turing").WithVariant(components.AvatarVariantRing),
		components.NewAvatar("Barbara Liskov").WithSize(components.AvatarSizeSmall),
		components.NewAvatar("Ken Thompson").WithSize(components.AvatarSizeLarge),
		components.NewAvatar("").WithFallback("??"),
	).WithGap(1).WithCrossAlign(components.CrossCenter)
}

func sidebars() ui.Renderable {
	items := []components.SidebarItem{
		{Icon: "⌂", Label: "Home", Active: true},
		{Icon: "◫", Label: "Components"},
		{Icon: "⚙", Label: "Settings"},
	}
	expanded := components.NewSidebar("Neumorph", items...).
		WithFooter(components.MutedText("v0 preview")).
		WithHeight(9)
	collapsed := components.NewSidebar("Neumorph", items...).
		WithVariant(components.SidebarVariantFlat).
		SetCollapsed(true).
		WithHeight(9)
	return components.HStack(expanded, collapsed).WithGap(2)
}

func forms() ui.Renderable {
	profile := components.NewFormSection("Profile",
		components.NewFormField("Name", components.NewInput("Ada Lovelace")).WithRequired(true),
		components.NewFormField("Email", components.NewInput("ada@example.com")).
			WithDescription("We never share it"),
		components.NewFormField("Username", components.NewInput("ada")).
			WithRequired(true).
			WithError("Username is taken"),
	).WithDescription("Shown on your public page")

	inline := components.NewFormField("Role", components.NewInput("Engineer")).
		WithLayout(components.FieldLayoutHorizontal)

	actions := components.NewFormActions(
		components.GhostButton("Cancel"),
		components.PrimaryButton("Save"),
	).WithWidth(44)

	return components.NewForm(profile, inline, actions).WithVariant(components.FormVariantCompact)
}

func uploads() ui.Renderable {
	zone := components.NewFileUpload().WithMaxSize(5 * 1024 * 1024).WithAccept("image/*,.pdf")
	zone.Offer(components.File{Name: "scan.tiff", Size: 12 * 1024 * 1024, MIME: "image/tiff"})

	dragging := components.NewFileUpload().
		WithVariant(components.FileUploadVariantFlat).
		WithSize(components.FileUploadSizeSmall)
	dragging.SetDragActive(true)

	previews := components.VStack(
		components.NewFilePreview(components.File{Name: "holiday.jpg", Size: 2457600, MIME: "image/jpeg"}).
			WithRemovable(true),
		components.NewFilePreview(components.File{Name: "contract.pdf", Size: 184320, MIME: "application/pdf"}).
			WithVariant(components.FilePreviewVariantPressed),
	)
	return components.VStack(components.HStack(zone, dragging).WithGap(2), previews).WithGap(1)
}

func shadows() ui.Renderable {
	cfg := components.DefaultNeuShadowConfig()
	boxes := make([]ui.Renderable, 0, 4)
	for _, shadow := range []components.NeuShadow{
		components.NeuFlat, components.NeuPressed, components.NeuConvex, components.NeuConcave,
	} {
		boxes = append(boxes, components.VStack(
			components.NewContainer(components.NewText(shadow.String())).
				WithPadding(components.SymmetricSpacing(0, 2)).
				WithAppliers(components.Neu(shadow)),
			components.MutedText(strings.SplitN(components.NeuStyle(shadow, cfg), ",", 2)[0]),
		))
	}
	return components.HStack(boxes...).WithGap(2)
}
