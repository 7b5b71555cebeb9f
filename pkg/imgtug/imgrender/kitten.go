package imgrender

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/datatug/imgtug/pkg/imgtug/layout"
)

var _ Clearer = (*KittenRenderer)(nil)

// KittenRenderer runs kitty's icat kitten for every image, the way a shell
// user would.
type KittenRenderer struct {
	out io.Writer
	run func(ctx context.Context, out io.Writer, name string, args ...string) error
}

func NewKittenRenderer(out io.Writer) *KittenRenderer {
	return &KittenRenderer{out: out, run: runCommand}
}

func runCommand(ctx context.Context, out io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = out
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

func (r *KittenRenderer) Render(ctx context.Context, path string, rect layout.Rect) error {
	if rect.Empty() {
		return nil
	}
	place := fmt.Sprintf("%dx%d@%dx%d", rect.Width, rect.Height, rect.X, rect.Y)
	if err := r.run(ctx, r.out, "kitty", "+kitten", "icat", "--stdin=no", "--place", place, path); err != nil {
		return &RenderError{Renderer: KindKitten, Path: path, Err: err}
	}
	return nil
}

func (r *KittenRenderer) Clear(ctx context.Context) error {
	return r.run(ctx, r.out, "kitty", "+kitten", "icat", "--stdin=no", "--clear")
}
