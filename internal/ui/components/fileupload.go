package components

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/h2non/filetype"
)

const (
	defaultUploadTitle       = "Drop files here or click to upload"
	defaultUploadDescription = "Supports all file types"
	dragActiveTitle          = "Drop files here"
	fallbackMIME             = "application/octet-stream"

	// sniffLen is how much of a file filetype needs to match every type it knows.
	sniffLen = 262
)

// File is a candidate handed to a FileUpload.
type File struct {
	Name string
	Size int64
	MIME string
}

// SniffFile describes the file at path. The MIME type comes from the content's
// magic number, then from the extension, and is application/octet-stream when
// neither is recognised.
func SniffFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}

	header := make([]byte, sniffLen)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("read header of %s: %w", path, err)
	}
	return File{Name: filepath.Base(path), Size: info.Size(), MIME: DetectMIME(path, header[:n])}, nil
}

// DetectMIME names the type of a file from its leading bytes, falling back to
// the extension of name.
func DetectMIME(name string, header []byte) string {
	if kind, _ := filetype.Match(header); kind != filetype.Unknown {
		return kind.MIME.Value
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if kind := filetype.GetType(ext); ext != "" && kind != filetype.Unknown {
		return kind.MIME.Value
	}
	return fallbackMIME
}

// Accepts reports whether f matches an accept list in the HTML form:
// comma-separated ".ext" suffixes, "type/*" wildcards or exact MIME types. An
// empty list accepts everything.
func Accepts(accept string, f File) bool {
	if strings.TrimSpace(accept) == "" {
		return true
	}
	name := strings.ToLower(f.Name)
	mime := strings.ToLower(f.MIME)
	for _, token := range strings.Split(accept, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		switch {
		case token == "":
		case strings.HasPrefix(token, "."):
			if strings.HasSuffix(name, token) {
				return true
			}
		case strings.HasSuffix(token, "/*"):
			if strings.HasPrefix(mime, strings.TrimSuffix(token, "*")) {
				return true
			}
		case token == mime:
			return true
		}
	}
	return false
}

// FormatFileSize renders bytes in the largest unit up to GB that keeps the
// number at least 1, with at most one decimal.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}
	units := []string{"Bytes", "KB", "MB", "GB"}
	i := int(math.Floor(math.Log(float64(bytes)) / math.Log(1024)))
	i = min(i, len(units)-1)
	v := math.Round(float64(bytes)/math.Pow(1024, float64(i))*10) / 10
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + units[i]
}

// FileUploadVariant selects the drop zone's depth.
type FileUploadVariant int

const (
	// FileUploadVariantDefault is an inset well.
	FileUploadVariantDefault FileUploadVariant = iota
	// FileUploadVariantFlat is raised from the surface.
	FileUploadVariantFlat
)

// FileUploadSize selects the drop zone's padding.
type FileUploadSize int

const (
	FileUploadSizeDefault FileUploadSize = iota
	FileUploadSizeSmall
	FileUploadSizeLarge
)

func (s FileUploadSize) padding() (int, int) {
	switch s {
	case FileUploadSizeSmall:
		return 0, 2
	case FileUploadSizeLarge:
		return 2, 6
	default:
		return 1, 4
	}
}

// FileUpload is a drop zone. Terminals have no drag and drop, so the host
// feeds it files through Offer, typically paths pasted or typed by the user,
// and toggles the drag highlight with SetDragActive.
type FileUpload struct {
	BaseComponent
	variant     FileUploadVariant
	size        FileUploadSize
	accept      string
	multiple    bool
	disabled    bool
	maxSize     int64
	title       string
	description string
	dragActive  bool
	err         string
	width       int
	onFiles     func([]File)
}

// NewFileUpload creates an inset single-file drop zone.
func NewFileUpload() *FileUpload {
	return &FileUpload{
		BaseComponent: NewBaseComponent(),
		title:         defaultUploadTitle,
		description:   defaultUploadDescription,
		width:         44,
	}
}

// Offer validates files and passes the survivors to the handler. Files the
// accept list rejects are dropped silently. Files over the size limit are
// dropped with an error that stays until the next offer. A single-file zone
// keeps only the first survivor. A disabled zone ignores the offer. Offer
// also ends any drag in progress.
func (u *FileUpload) Offer(files ...File) []File {
	u.dragActive = false
	if u.disabled {
		return nil
	}
	u.err = ""

	valid := make([]File, 0, len(files))
	oversized := false
	for _, f := range files {
		if !Accepts(u.accept, f) {
			continue
		}
		if u.maxSize > 0 && f.Size > u.maxSize {
			oversized = true
			continue
		}
		valid = append(valid, f)
	}
	if oversized {
		u.err = fmt.Sprintf("File size must be less than %.1fMB", float64(u.maxSize)/(1024*1024))
	}
	if len(valid) == 0 {
		return nil
	}
	if !u.multiple {
		valid = valid[:1]
	}
	if u.onFiles != nil {
		u.onFiles(valid)
	}
	return valid
}

// SetDragActive toggles the drag highlight. Disabled zones stay idle.
func (u *FileUpload) SetDragActive(active bool) {
	u.dragActive = active && !u.disabled
}

// DragActive reports whether the highlight is on.
func (u *FileUpload) DragActive() bool {
	return u.dragActive
}

// Error returns the message from the last offer, if any.
func (u *FileUpload) Error() string {
	return u.err
}

// View renders with the default theme.
func (u *FileUpload) View() string {
	return u.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon, title, description and error centred in
// the zone.
func (u *FileUpload) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	surface := theme.Palette.Surface.Base
	accent := theme.Palette.Primary.Base

	shadow := NeuPressed
	if u.variant == FileUploadVariantFlat {
		shadow = NeuFlat
	}
	vertical, horizontal := u.size.padding()
	frame := Neu(shadow)(lipgloss.NewStyle().Background(surface).Padding(vertical, horizontal), theme)
	if u.dragActive {
		frame = frame.BorderForeground(accent)
	}
	frame = u.styleOver(frame, theme)
	inner := max(1, u.width-frame.GetHorizontalFrameSize())

	icon := lipgloss.NewStyle().Foreground(theme.Palette.Muted.OnBase)
	title := theme.Typography.Body.Bold(true)
	text := u.title
	if u.dragActive {
		icon = icon.Foreground(accent)
		title = title.Foreground(accent)
		text = dragActiveTitle
	}

	lines := []string{
		icon.Render("⇪"),
		"",
		title.Render(ansi.Truncate(text, inner, "…")),
		theme.Typography.Muted.Render(ansi.Truncate(u.description, inner, "…")),
	}
	if u.err != "" {
		lines = append(lines, "", lipgloss.NewStyle().
			Foreground(theme.Palette.Destructive.Base).
			Bold(true).
			Render(ansi.Truncate(u.err, inner, "…")))
	}
	if u.disabled {
		frame = frame.Faint(true)
	}
	body := lipgloss.NewStyle().Width(inner).Align(lipgloss.Center).Background(surface).
		Render(strings.Join(lines, "\n"))
	return frame.Render(body)
}

// WithVariant sets the depth.
func (u *FileUpload) WithVariant(variant FileUploadVariant) *FileUpload {
	u.variant = variant
	return u
}

// WithSize sets the padding.
func (u *FileUpload) WithSize(size FileUploadSize) *FileUpload {
	u.size = size
	return u
}

// WithAccept restricts offers to an accept list; see Accepts.
func (u *FileUpload) WithAccept(accept string) *FileUpload {
	u.accept = accept
	return u
}

// WithMultiple lets one offer deliver several files.
func (u *FileUpload) WithMultiple(multiple bool) *FileUpload {
	u.multiple = multiple
	return u
}

// WithDisabled greys the zone out and ignores offers.
func (u *FileUpload) WithDisabled(disabled bool) *FileUpload {
	u.disabled = disabled
	if disabled {
		u.dragActive = false
	}
	return u
}

// WithMaxSize rejects files larger than bytes. Zero means no limit.
func (u *FileUpload) WithMaxSize(bytes int64) *FileUpload {
	u.maxSize = bytes
	return u
}

// WithTitle replaces the idle title.
func (u *FileUpload) WithTitle(title string) *FileUpload {
	u.title = title
	return u
}

// WithDescription replaces the line under the title.
func (u *FileUpload) WithDescription(description string) *FileUpload {
	u.description = description
	return u
}

// WithWidth sets the outer width.
func (u *FileUpload) WithWidth(width int) *FileUpload {
	u.width = width
	return u
}

// WithAppliers appends style modifiers.
func (u *FileUpload) WithAppliers(appliers ...StyleFunc) *FileUpload {
	u.AddAppliers(appliers...)
	return u
}

// OnFiles sets the handler called with the files each offer accepts.
func (u *FileUpload) OnFiles(fn func([]File)) *FileUpload {
	u.onFiles = fn
	return u
}

// Role is "button": the zone opens a file picker when activated.
func (u *FileUpload) Role() string {
	return "button"
}

// FilePreviewVariant selects the preview row's depth.
type FilePreviewVariant int

const (
	FilePreviewVariantDefault FilePreviewVariant = iota
	FilePreviewVariantPressed
)

// FilePreview is a row describing one uploaded file.
type FilePreview struct {
	BaseComponent
	file      File
	variant   FilePreviewVariant
	hideSize  bool
	removable bool
	width     int
}

// NewFilePreview creates a raised row for f.
func NewFilePreview(f File) *FilePreview {
	return &FilePreview{BaseComponent: NewBaseComponent(), file: f, width: 44}
}

// FileIcon picks a glyph for a MIME type.
func FileIcon(mime string) string {
	switch {
	case strings.HasPrefix(mime, "image/"):
		return "▣"
	case strings.HasPrefix(mime, "video/"):
		return "▶"
	case mime == "application/pdf":
		return "▤"
	default:
		return "≡"
	}
}

// View renders with the default theme.
func (p *FilePreview) View() string {
	return p.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon, the truncated name, the size and, when
// removable, a close mark at the right edge.
func (p *FilePreview) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	surface := theme.Palette.Surface.Base
	shadow := NeuFlat
	if p.variant == FilePreviewVariantPressed {
		shadow = NeuPressed
	}
	frame := p.styleOver(Neu(shadow)(lipgloss.NewStyle().Background(surface).Padding(0, 1), theme), theme)
	inner := max(1, p.width-frame.GetHorizontalFrameSize())

	icon := lipgloss.NewStyle().
		Foreground(theme.Palette.Muted.OnBase).
		Background(theme.Palette.Muted.Base).
		Padding(0, 1).
		Render(FileIcon(p.file.MIME))

	closer := ""
	if p.removable {
		closer = lipgloss.NewStyle().Foreground(theme.Palette.Muted.OnBase).Render(" ✕")
	}
	textWidth := max(1, inner-lipgloss.Width(icon)-1-lipgloss.Width(closer))

	info := []string{theme.Typography.Body.Bold(true).Render(ansi.Truncate(p.file.Name, textWidth, "…"))}
	if !p.hideSize {
		info = append(info, theme.Typography.Muted.Render(FormatFileSize(p.file.Size)))
	}
	text := lipgloss.NewStyle().Width(textWidth).Render(strings.Join(info, "\n"))

	row := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", text, closer)
	return frame.Width(inner + frame.GetHorizontalPadding()).Render(row)
}

// WithVariant sets the depth.
func (p *FilePreview) WithVariant(variant FilePreviewVariant) *FilePreview {
	p.variant = variant
	return p
}

// WithSize shows or hides the size line.
func (p *FilePreview) WithSize(show bool) *FilePreview {
	p.hideSize = !show
	return p
}

// WithRemovable shows the close mark.
func (p *FilePreview) WithRemovable(removable bool) *FilePreview {
	p.removable = removable
	return p
}

// WithWidth sets the outer width.
func (p *FilePreview) WithWidth(width int) *FilePreview {
	p.width = width
	return p
}

// File returns the previewed file.
func (p *FilePreview) File() File {
	return p.file
}
