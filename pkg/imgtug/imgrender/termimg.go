package imgrender

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/blacktop/go-termimg"
	"github.com/datatug/imgtug/pkg/imgtug/layout"
)

const (
	saveCursor    = "\x1b7"
	restoreCursor = "\x1b8"
	// deletes all visible kitty placements
	kittyDeleteAll = "\x1b_Ga=d\x1b\\"
)

var _ Clearer = (*TermimgRenderer)(nil)

// TermimgRenderer emits kitty, iTerm2 or sixel escape sequences produced
// by go-termimg.
type TermimgRenderer struct {
	kind   Kind
	out    io.Writer
	decode func(path string) (image.Image, error)
	encode func(img image.Image, proto termimg.Protocol, width, height int) (string, error)
}

func NewTermimgRenderer(kind Kind, out io.Writer) *TermimgRenderer {
	return &TermimgRenderer{
		kind:   kind,
		out:    out,
		decode: decodeImage,
		encode: encodeTermimg,
	}
}

func (r *TermimgRenderer) protocol() termimg.Protocol {
	switch r.kind {
	case KindITerm2:
		return termimg.ITerm2
	case KindSixel:
		return termimg.Sixel
	default:
		return termimg.Kitty
	}
}

func encodeTermimg(img image.Image, proto termimg.Protocol, width, height int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(width, height).Scale(termimg.ScaleFit)
	return ti.Render()
}

func (r *TermimgRenderer) Render(ctx context.Context, path string, rect layout.Rect) error {
	if err := ctx.Err(); err != nil {
		return &RenderError{Renderer: r.kind, Path: path, Err: err}
	}
	if rect.Empty() {
		return nil
	}
	img, err := r.decode(path)
	if err != nil {
		return &RenderError{Renderer: r.kind, Path: path, Err: err}
	}
	rendered, err := r.encode(img, r.protocol(), rect.Width, rect.Height)
	if err != nil {
		return &RenderError{Renderer: r.kind, Path: path, Err: err}
	}
	moveTo := fmt.Sprintf("\x1b[%d;%dH", rect.Y+1, rect.X+1)
	if _, err = io.WriteString(r.out, saveCursor+moveTo+rendered+restoreCursor); err != nil {
		return &RenderError{Renderer: r.kind, Path: path, Err: err}
	}
	return nil
}

// Clear removes kitty placements; sixel and iTerm2 output is overwritten
// by the next full repaint of the cells.
func (r *TermimgRenderer) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.kind != KindKitty {
		return nil
	}
	_, err := io.WriteString(r.out, kittyDeleteAll)
	return err
}
