// Package imgtug wires the browser together and runs its input loop.
package imgtug

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/datatug/imgtug/pkg/files"
	"github.com/datatug/imgtug/pkg/files/osfile"
	"github.com/datatug/imgtug/pkg/imgtug/frame"
	"github.com/datatug/imgtug/pkg/imgtug/imgrender"
	"github.com/datatug/imgtug/pkg/imgtug/layout"
	"github.com/datatug/imgtug/pkg/imgtug/listing"
	"github.com/datatug/imgtug/pkg/imgtug/metadata"
	"github.com/datatug/imgtug/pkg/imgtug/navigator"
	"github.com/datatug/imgtug/pkg/imgtug/settings"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var clipboardWriteAll = clipboard.WriteAll

// App is the terminal image browser.
type App struct {
	startDir string
	store    files.Store
	lister   navigator.Lister
	provider metadata.Provider
	kind     imgrender.Kind
	out      io.Writer
	log      logrus.FieldLogger

	composerOptions []frame.Option

	newScreen   func() (tcell.Screen, error)
	newRenderer func(kind imgrender.Kind, screen tcell.Screen, out io.Writer) (imgrender.Renderer, error)
	pollEvent   func(screen tcell.Screen) tcell.Event
}

// NewApp prepares a browser rooted at startDir.
func NewApp(startDir string, s settings.Settings, log logrus.FieldLogger) (*App, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	mask, err := s.Mask()
	if err != nil {
		return nil, err
	}
	kind, err := s.RendererKind()
	if err != nil {
		return nil, err
	}
	store := osfile.NewStore(startDir)
	return &App{
		startDir: startDir,
		store:    store,
		lister:   listing.NewLister(store, listing.WithMask(mask), listing.WithLogger(log)),
		provider: metadata.NewFileProvider(),
		kind:     kind,
		out:      os.Stdout,
		log:      log,
		composerOptions: []frame.Option{
			frame.WithMessages(s.Messages),
			frame.WithStatusText(s.StatusText),
			frame.WithXMLStyle(s.XMLStyle),
			frame.WithLogger(log),
		},
		newScreen:   tcell.NewScreen,
		newRenderer: imgrender.New,
		pollEvent: func(screen tcell.Screen) tcell.Event {
			return screen.PollEvent()
		},
	}, nil
}

// Run takes over the terminal until the user quits. The terminal is
// restored on every exit path. A listing failure is returned after the
// restore.
func (a *App) Run(ctx context.Context) error {
	state, err := navigator.New(ctx, a.lister, a.startDir)
	if err != nil {
		return err
	}

	screen, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer, err := a.newRenderer(a.kind, screen, a.out)
	if err != nil {
		return err
	}
	composer := frame.NewComposer(screen, renderer, a.provider, a.composerOptions...)
	a.log.WithFields(logrus.Fields{
		"host": a.store.RootTitle(),
		"root": a.store.RootURL().String(),
		"dir":  state.CurrentDir,
	}).Info("browsing")

	return a.loop(ctx, screen, state, composer, renderer)
}

func (a *App) loop(ctx context.Context, screen tcell.Screen, state *navigator.State, composer *frame.Composer, renderer imgrender.Renderer) error {
	var view frame.View
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		width, height := screen.Size()
		if err := composer.Compose(ctx, state, layout.Compute(width, height), view); err != nil {
			return err
		}
		view.Notice = ""

		switch ev := a.pollEvent(screen).(type) {
		case nil:
			// screen finalized
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			navEvent, cmd := translateKey(ev)
			if cmd != cmdNone {
				a.runCommand(cmd, state, &view)
				continue
			}
			quit, err := state.Apply(ctx, navEvent)
			if err != nil {
				return err
			}
			if quit {
				clearScreen(ctx, screen, renderer, a.log)
				return nil
			}
			if navEvent == navigator.Activate || navEvent == navigator.Ascend {
				a.log.WithField("dir", state.CurrentDir).Debug("changed directory")
			}
		}
	}
}

func (a *App) runCommand(cmd command, state *navigator.State, view *frame.View) {
	switch cmd {
	case cmdHelp:
		view.Mode = toggleMode(view.Mode, frame.ModeHelp)
	case cmdRawXMP:
		view.Mode = toggleMode(view.Mode, frame.ModeRawXMP)
	case cmdCloseView:
		view.Mode = frame.ModeMetadata
	case cmdYank:
		view.Notice = a.yank(state)
	}
}

func toggleMode(current, mode frame.Mode) frame.Mode {
	if current == mode {
		return frame.ModeMetadata
	}
	return mode
}

// yank copies the prompt of the selected image and returns the notice
// to show.
func (a *App) yank(state *navigator.State) string {
	path, ok := state.SelectedImage()
	if !ok {
		return "Select an image to yank its prompt."
	}
	md, err := a.provider.Extract(path)
	if err != nil {
		var parseErr *metadata.ParseError
		if !errors.As(err, &parseErr) {
			a.log.WithField("path", path).WithError(err).Warn("failed to read metadata")
			return "Failed to read metadata."
		}
	}
	text := md.YankText()
	if text == "" {
		return "Nothing to yank."
	}
	if err = clipboardWriteAll(text); err != nil {
		a.log.WithError(err).Warn("failed to write to clipboard")
		return "Clipboard is not available."
	}
	if _, hasPrompt := md.Get(metadata.PromptKey); hasPrompt {
		return "Copied prompt to clipboard."
	}
	return "Copied metadata to clipboard."
}

func clearScreen(ctx context.Context, screen tcell.Screen, renderer imgrender.Renderer, log logrus.FieldLogger) {
	if clearer, ok := renderer.(imgrender.Clearer); ok {
		if err := clearer.Clear(ctx); err != nil {
			log.WithError(err).Debug("failed to clear image")
		}
	}
	screen.Clear()
	screen.Sync()
}
