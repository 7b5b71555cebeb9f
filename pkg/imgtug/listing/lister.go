// Package listing enumerates the images and subdirectories of a directory.
package listing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/datatug/imgtug/pkg/files"
	"github.com/datatug/imgtug/pkg/fsutils"
	"github.com/datatug/imgtug/pkg/imgtug/masks"
	"github.com/sirupsen/logrus"
)

// AccessError reports a directory that could not be listed.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to list directory %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error {
	return e.Err
}

// Lister lists directories through a files.Store.
type Lister struct {
	store files.Store
	mask  *masks.Mask
	log   logrus.FieldLogger
}

type Option func(l *Lister)

func WithMask(mask *masks.Mask) Option {
	return func(l *Lister) {
		l.mask = mask
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Lister) {
		l.log = log
	}
}

func NewLister(store files.Store, options ...Option) *Lister {
	l := &Lister{
		store: store,
		mask:  masks.Images(),
		log:   logrus.StandardLogger(),
	}
	for _, option := range options {
		option(l)
	}
	if l.mask == nil {
		l.mask = masks.Images()
	}
	return l
}

// List returns the directories and images of dir, directories first,
// each group in natural order. An empty result is not an error.
func (l *Lister) List(ctx context.Context, dir string) ([]Entry, error) {
	children, err := l.store.ReadDir(ctx, dir)
	if err != nil {
		return nil, &AccessError{Path: dir, Err: err}
	}
	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		entry, ok := l.toEntry(ctx, dir, child)
		if ok {
			entries = append(entries, entry)
		}
	}
	SortEntries(entries)
	l.log.WithFields(logrus.Fields{"path": dir, "entries": len(entries)}).Debug("listed directory")
	return entries, nil
}

func (l *Lister) toEntry(ctx context.Context, dir string, child os.DirEntry) (Entry, bool) {
	name := child.Name()
	entry := Entry{Name: name, IsDir: child.IsDir()}
	if child.Type()&os.ModeSymlink != 0 {
		info, err := l.store.Stat(ctx, filepath.Join(dir, name))
		if err != nil {
			// dangling link
			l.log.WithField("path", filepath.Join(dir, name)).WithError(err).Debug("skipping unresolvable link")
			return entry, false
		}
		entry.IsDir = info.IsDir()
	}
	if !entry.IsDir {
		matched, err := l.mask.Match(name)
		if err != nil {
			l.log.WithField("name", name).WithError(err).Warn("image mask failed")
		}
		entry.IsImage = matched
	}
	return entry, entry.IsDir || entry.IsImage
}

// SortEntries orders directories before files and names naturally.
func SortEntries(entries []Entry) {
	slices.SortStableFunc(entries, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return fsutils.CompareNatural(a.Name, b.Name)
	})
}
