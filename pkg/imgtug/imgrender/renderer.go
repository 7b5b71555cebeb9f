// Package imgrender paints image files into a rectangle of the terminal.
package imgrender

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/datatug/imgtug/pkg/imgtug/layout"
	"github.com/gdamore/tcell/v2"
)

// Renderer paints the image at path into rect. It is called after the
// text cells of the frame have been flushed to the terminal.
type Renderer interface {
	Render(ctx context.Context, path string, rect layout.Rect) error
}

// Clearer is implemented by renderers whose output outlives a redraw of the
// text cells, e.g. kitty image placements.
type Clearer interface {
	Clear(ctx context.Context) error
}

// RenderError reports an image that could not be painted.
type RenderError struct {
	Renderer Kind
	Path     string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s renderer failed for %s: %v", e.Renderer, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Kind names a renderer implementation in the config.
type Kind string

const (
	KindAuto       Kind = "auto"
	KindKitty      Kind = "kitty"
	KindITerm2     Kind = "iterm2"
	KindSixel      Kind = "sixel"
	KindKitten     Kind = "kitten"
	KindHalfblocks Kind = "halfblocks"
	KindNone       Kind = "none"
)

// Kinds lists every accepted renderer name.
var Kinds = []Kind{KindAuto, KindKitty, KindITerm2, KindSixel, KindKitten, KindHalfblocks, KindNone}

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if k == "" {
		return KindAuto, nil
	}
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown renderer %q", s)
}

// New creates the renderer of the given kind. Escape sequence based
// renderers write to out; the half-block renderer paints into screen.
func New(kind Kind, screen tcell.Screen, out io.Writer) (Renderer, error) {
	if kind == KindAuto || kind == "" {
		kind = Detect()
	}
	switch kind {
	case KindKitty, KindITerm2, KindSixel:
		return NewTermimgRenderer(kind, out), nil
	case KindKitten:
		return NewKittenRenderer(out), nil
	case KindHalfblocks:
		return NewHalfblocksRenderer(screen), nil
	case KindNone:
		return NoneRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", kind)
	}
}

// NoneRenderer never paints; the frame shows its placeholder instead.
type NoneRenderer struct{}

func (NoneRenderer) Render(_ context.Context, path string, _ layout.Rect) error {
	return &RenderError{Renderer: KindNone, Path: path, Err: fmt.Errorf("image preview is disabled")}
}
