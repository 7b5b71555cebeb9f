// Package navigator holds the browsing state and applies key events to it.
package navigator

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/datatug/imgtug/pkg/imgtug/listing"
)

// Lister lists a directory, see listing.Lister.
type Lister interface {
	List(ctx context.Context, dir string) ([]listing.Entry, error)
}

// Event is a navigation intent decoded from a key press.
type Event int

const (
	None Event = iota
	MoveUp
	MoveDown
	Activate
	Ascend
	Home
	End
	Quit
)

func (e Event) String() string {
	switch e {
	case None:
		return "none"
	case MoveUp:
		return "up"
	case MoveDown:
		return "down"
	case Activate:
		return "activate"
	case Ascend:
		return "ascend"
	case Home:
		return "home"
	case End:
		return "end"
	case Quit:
		return "quit"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// State is owned by the input loop; it is not safe for concurrent use.
type State struct {
	StartDir   string
	CurrentDir string
	Entries    []listing.Entry
	Selection  int

	lister Lister
}

// New lists startDir and returns a state with the first entry selected.
func New(ctx context.Context, lister Lister, startDir string) (*State, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory %q: %w", startDir, err)
	}
	s := &State{StartDir: abs, lister: lister}
	if err = s.changeDir(ctx, abs); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply changes the state according to ev. quit is true for Quit only.
// When a re-list fails the error is returned and the state is unchanged.
func (s *State) Apply(ctx context.Context, ev Event) (quit bool, err error) {
	switch ev {
	case Quit:
		return true, nil
	case MoveUp:
		if s.Selection > 0 {
			s.Selection--
		}
	case MoveDown:
		if s.Selection < len(s.Entries)-1 {
			s.Selection++
		}
	case Home:
		s.Selection = 0
	case End:
		if len(s.Entries) > 0 {
			s.Selection = len(s.Entries) - 1
		}
	case Ascend:
		if s.CurrentDir != s.StartDir {
			err = s.changeDir(ctx, filepath.Dir(s.CurrentDir))
		}
	case Activate:
		entry, ok := s.Selected()
		switch {
		case !ok:
		case entry.IsParent:
			err = s.changeDir(ctx, filepath.Dir(s.CurrentDir))
		case entry.IsDir:
			err = s.changeDir(ctx, filepath.Join(s.CurrentDir, entry.Name))
		}
	}
	return false, err
}

func (s *State) changeDir(ctx context.Context, dir string) error {
	entries, err := s.lister.List(ctx, dir)
	if err != nil {
		return err
	}
	if dir != s.StartDir {
		entries = append([]listing.Entry{listing.ParentEntry()}, entries...)
	}
	s.CurrentDir = dir
	s.Entries = entries
	s.Selection = 0
	return nil
}

// Selected returns the highlighted entry; ok is false for an empty listing.
func (s *State) Selected() (entry listing.Entry, ok bool) {
	if s.Selection < 0 || s.Selection >= len(s.Entries) {
		return entry, false
	}
	return s.Entries[s.Selection], true
}

// SelectedImage returns the path of the highlighted entry if it is an image.
func (s *State) SelectedImage() (string, bool) {
	entry, ok := s.Selected()
	if !ok || !entry.IsImage {
		return "", false
	}
	return filepath.Join(s.CurrentDir, entry.Name), true
}
