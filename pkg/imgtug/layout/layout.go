// Package layout splits the terminal into the browser panes.
package layout

import "fmt"

// Rect is a rectangle in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Overlaps reports whether two non-empty rectangles share a cell.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width && r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d@%dx%d", r.Width, r.Height, r.X, r.Y)
}

// Layout holds the pane rectangles of one frame.
type Layout struct {
	Width, Height int

	FileTree  Rect
	Image     Rect
	Metadata  Rect
	StatusBar Rect
}

// Panes returns the pane rectangles in drawing order.
func (l Layout) Panes() []Rect {
	return []Rect{l.FileTree, l.Image, l.Metadata, l.StatusBar}
}

// Compute lays out a terminal of width x height cells: the file tree in the
// top left quarter, the image preview below it, metadata on the right and a
// one-row status bar at the bottom. It is recomputed for every frame.
func Compute(width, height int) Layout {
	w, h := max(width, 0), max(height, 0)
	halfW, halfH := w/2, h/2

	l := Layout{Width: w, Height: h}
	l.FileTree = clampRect(Rect{X: 0, Y: 0, Width: halfW, Height: halfH - 1}, w, h)
	l.Image = clampRect(Rect{X: 0, Y: halfH + 1, Width: halfW, Height: halfH - 2}, w, h)
	l.Metadata = clampRect(Rect{X: halfW + 1, Y: 1, Width: w - halfW - 2, Height: h - 2}, w, h)
	if h > 0 {
		l.StatusBar = Rect{X: 0, Y: h - 1, Width: w, Height: 1}
	} else {
		l.StatusBar = Rect{}
	}
	return l
}

// clampRect keeps r inside a w x h terminal and its sizes non-negative.
func clampRect(r Rect, w, h int) Rect {
	r.X = min(max(r.X, 0), w)
	r.Y = min(max(r.Y, 0), h)
	r.Width = max(min(r.Width, w-r.X), 0)
	r.Height = max(min(r.Height, h-r.Y), 0)
	return r
}
