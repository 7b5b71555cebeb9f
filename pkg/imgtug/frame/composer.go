// Package frame draws one full screen of the browser from the navigation
// state: file tree, image preview, metadata pane and status bar.
package frame

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/datatug/imgtug/pkg/chroma2tcell"
	"github.com/datatug/imgtug/pkg/fsutils"
	"github.com/datatug/imgtug/pkg/imgtug/imgrender"
	"github.com/datatug/imgtug/pkg/imgtug/layout"
	"github.com/datatug/imgtug/pkg/imgtug/metadata"
	"github.com/datatug/imgtug/pkg/imgtug/navigator"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/sirupsen/logrus"
)

const (
	NoMetadataText    = "No XMP metadata found."
	NoMessageText     = "No message found for this image."
	SelectFileText    = "Select a file to view details."
	ImageUnavailable  = "image unavailable"
	statusBarColorTag = "[yellow:#104e8b]"
	noticeColorTag    = "[black:yellow]"
)

var statusBarStyle = tcell.StyleDefault.
	Foreground(tcell.ColorYellow).
	Background(tcell.NewRGBColor(16, 78, 139))

// Mode selects what the metadata pane shows.
type Mode int

const (
	ModeMetadata Mode = iota
	ModeHelp
	ModeRawXMP
)

// View is the presentation state that is not part of navigation.
type View struct {
	Mode Mode
	// Notice is shown for one frame at the bottom of the metadata pane.
	Notice string
}

// FrameError is a panic recovered while composing a frame.
type FrameError struct {
	Panic any
	Stack []byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("failed to compose frame: %v", e.Panic)
}

// Composer owns the screen between two key presses.
type Composer struct {
	screen   tcell.Screen
	renderer imgrender.Renderer
	provider metadata.Provider

	messages   map[string]string
	statusText string
	xmlStyle   string
	log        logrus.FieldLogger

	imageShown bool
}

type Option func(c *Composer)

// WithMessages sets the per-file messages keyed by base file name.
func WithMessages(messages map[string]string) Option {
	return func(c *Composer) {
		c.messages = messages
	}
}

func WithStatusText(text string) Option {
	return func(c *Composer) {
		if text != "" {
			c.statusText = text
		}
	}
}

// WithXMLStyle names the chroma style of the raw XMP view.
func WithXMLStyle(style string) Option {
	return func(c *Composer) {
		c.xmlStyle = style
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Composer) {
		if log != nil {
			c.log = log
		}
	}
}

func NewComposer(screen tcell.Screen, renderer imgrender.Renderer, provider metadata.Provider, options ...Option) *Composer {
	c := &Composer{
		screen:     screen,
		renderer:   renderer,
		provider:   provider,
		statusText: DefaultStatusText,
		xmlStyle:   chroma2tcell.DefaultStyle,
		log:        logrus.StandardLogger(),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Compose clears the screen and draws every pane for state. The image is
// rendered last, after the cells are on the terminal. Renderer and
// metadata failures are drawn as notices; only a panic is returned, as
// *FrameError.
func (c *Composer) Compose(ctx context.Context, state *navigator.State, l layout.Layout, view View) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &FrameError{Panic: r, Stack: debug.Stack()}
		}
	}()

	fullRepaint := c.imageShown
	if fullRepaint {
		if clearer, ok := c.renderer.(imgrender.Clearer); ok {
			if clearErr := clearer.Clear(ctx); clearErr != nil {
				c.log.WithError(clearErr).Warn("failed to clear previous image")
			}
		}
		c.imageShown = false
	}
	c.screen.Clear()

	c.drawFileTree(state, l.FileTree)

	imagePath, isImage := state.SelectedImage()
	switch {
	case view.Mode == ModeHelp:
		c.drawHelp(l.Metadata)
	case !isImage:
		c.drawLines(l.Metadata, Wrap(SelectFileText, l.Metadata.Width))
	case view.Mode == ModeRawXMP:
		c.drawRawXMP(l.Metadata, c.extract(imagePath))
	default:
		c.drawMetadata(l.Metadata, imagePath, c.extract(imagePath))
	}
	if view.Notice != "" && l.Metadata.Height > 0 {
		r := l.Metadata
		c.print(noticeColorTag+tview.Escape(view.Notice), r.X, r.Y+r.Height-1, r.Width)
	}
	c.drawStatusBar(l.StatusBar)

	if fullRepaint {
		c.screen.Sync()
	} else {
		c.screen.Show()
	}

	if isImage && !l.Image.Empty() {
		c.renderImage(ctx, imagePath, l.Image)
	}
	return nil
}

func (c *Composer) renderImage(ctx context.Context, path string, rect layout.Rect) {
	if err := c.renderer.Render(ctx, path, rect); err != nil {
		c.log.WithFields(logrus.Fields{"path": path, "rect": rect.String()}).WithError(err).Warn("failed to render image")
		c.print("[gray]"+ImageUnavailable, rect.X, rect.Y, rect.Width)
		c.screen.Show()
		return
	}
	c.imageShown = true
}

func (c *Composer) extract(path string) *metadata.Metadata {
	md, err := c.provider.Extract(path)
	if err != nil {
		c.log.WithField("path", path).WithError(err).Debug("failed to read metadata")
	}
	if md == nil {
		md = &metadata.Metadata{}
	}
	return md
}

func (c *Composer) drawFileTree(state *navigator.State, r layout.Rect) {
	for i, entry := range state.Entries {
		if i >= r.Height {
			break
		}
		text := tview.Escape(entry.DisplayName())
		if i == state.Selection {
			text = "[::r]" + text
		}
		c.print(text, r.X, r.Y+i, r.Width)
	}
}

func (c *Composer) drawMetadata(r layout.Rect, path string, md *metadata.Metadata) {
	var lines []string
	if summary := md.Dimensions(); summary != "" {
		if md.Size > 0 {
			summary += ", " + fsutils.GetSizeShortText(md.Size)
		}
		lines = append(lines, "[gray]"+tview.Escape(summary))
	}
	if md.Found() {
		for _, field := range md.Fields {
			lines = append(lines, escapeAll(Wrap(field.String(), r.Width))...)
		}
	} else {
		lines = append(lines, escapeAll(Wrap(NoMetadataText, r.Width))...)
	}
	lines = append(lines, "")
	message, ok := c.messages[filepath.Base(path)]
	if !ok {
		message = NoMessageText
	}
	lines = append(lines, escapeAll(Wrap(message, r.Width))...)
	c.drawLines(r, lines)
}

func (c *Composer) drawRawXMP(r layout.Rect, md *metadata.Metadata) {
	if md.RawXMP == "" {
		c.drawLines(r, escapeAll(Wrap(NoMetadataText, r.Width)))
		return
	}
	packet := strings.TrimSpace(md.RawXMP)
	lines, err := chroma2tcell.ColorizeXML(packet, c.xmlStyle, lexers.Get)
	if err != nil {
		c.log.WithError(err).Debug("failed to highlight XMP")
		lines = escapeAll(strings.Split(packet, "\n"))
	}
	c.drawLines(r, lines)
}

func (c *Composer) drawHelp(r layout.Rect) {
	lines := []string{"[::b]Keys"}
	for _, item := range HelpItems {
		lines = append(lines, tview.Escape(item.String()))
	}
	c.drawLines(r, lines)
}

func (c *Composer) drawStatusBar(r layout.Rect) {
	if r.Empty() {
		return
	}
	for x := r.X; x < r.X+r.Width; x++ {
		c.screen.SetContent(x, r.Y, ' ', nil, statusBarStyle)
	}
	c.print(statusBarColorTag+tview.Escape(c.statusText), r.X, r.Y, r.Width)
}

// drawLines prints pre-tagged lines top to bottom, cutting at the pane edges.
func (c *Composer) drawLines(r layout.Rect, lines []string) {
	for i, line := range lines {
		if i >= r.Height {
			return
		}
		c.print(line, r.X, r.Y+i, r.Width)
	}
}

func (c *Composer) print(text string, x, y, width int) {
	if width <= 0 {
		return
	}
	tview.Print(c.screen, text, x, y, width, tview.AlignLeft, tcell.ColorDefault)
}

func escapeAll(lines []string) []string {
	for i, line := range lines {
		lines[i] = tview.Escape(line)
	}
	return lines
}
