package imgrender

import (
	"context"
	"image"

	"github.com/datatug/imgtug/pkg/imgtug/layout"
	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"
)

const upperHalfBlock = '▀'

// HalfblocksRenderer paints images with true color half-block characters
// straight into the tcell screen. Each cell shows two vertical pixels.
type HalfblocksRenderer struct {
	screen tcell.Screen
	decode func(path string) (image.Image, error)
}

func NewHalfblocksRenderer(screen tcell.Screen) *HalfblocksRenderer {
	return &HalfblocksRenderer{screen: screen, decode: decodeImage}
}

func (r *HalfblocksRenderer) Render(ctx context.Context, path string, rect layout.Rect) error {
	if err := ctx.Err(); err != nil {
		return &RenderError{Renderer: KindHalfblocks, Path: path, Err: err}
	}
	if rect.Empty() {
		return nil
	}
	img, err := r.decode(path)
	if err != nil {
		return &RenderError{Renderer: KindHalfblocks, Path: path, Err: err}
	}
	scaled := scaleToFit(img, rect.Width, rect.Height*2)
	bounds := scaled.Bounds()
	offsetX := rect.X + (rect.Width-bounds.Dx())/2
	offsetY := rect.Y + (rect.Height-(bounds.Dy()+1)/2)/2
	for y := 0; y < bounds.Dy(); y += 2 {
		for x := 0; x < bounds.Dx(); x++ {
			top := pixelColor(scaled, x, y)
			bottom := tcell.ColorDefault
			if y+1 < bounds.Dy() {
				bottom = pixelColor(scaled, x, y+1)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			r.screen.SetContent(offsetX+x, offsetY+y/2, upperHalfBlock, nil, style)
		}
	}
	r.screen.Show()
	return nil
}

// scaleToFit keeps the aspect ratio and never scales up.
func scaleToFit(img image.Image, maxW, maxH int) *image.NRGBA {
	src := img.Bounds()
	w, h := src.Dx(), src.Dy()
	if w > maxW || h > maxH {
		if w*maxH > h*maxW {
			h = max(h*maxW/w, 1)
			w = maxW
		} else {
			w = max(w*maxH/h, 1)
			h = maxH
		}
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, xdraw.Src, nil)
	return dst
}

func pixelColor(img *image.NRGBA, x, y int) tcell.Color {
	c := img.NRGBAAt(x, y)
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
