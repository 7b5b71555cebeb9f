// Package memfile is an in-memory files.Store for tests and demos.
package memfile

import (
	"context"
	"io/fs"
	"net/url"
	"os"
	"path"
	"slices"
	"sync"

	"github.com/datatug/imgtug/pkg/files"
)

var _ files.Store = (*Store)(nil)

// Store keeps directory listings keyed by slash-separated absolute path.
type Store struct {
	mu      sync.Mutex
	dirs    map[string][]os.DirEntry
	stats   map[string]os.FileInfo
	readErr map[string]error
	reads   []string
}

func NewStore() *Store {
	return &Store{
		dirs:    make(map[string][]os.DirEntry),
		stats:   make(map[string]os.FileInfo),
		readErr: make(map[string]error),
	}
}

// AddDir registers a directory with its children. Child directories
// are registered as empty directories unless added explicitly.
func (s *Store) AddDir(dir string, children ...files.DirEntry) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]os.DirEntry, 0, len(children))
	for _, child := range children {
		entries = append(entries, child)
		childPath := path.Join(dir, child.Name())
		info, _ := child.Info()
		s.stats[childPath] = info
		if child.IsDir() {
			if _, ok := s.dirs[childPath]; !ok {
				s.dirs[childPath] = nil
			}
		}
	}
	s.dirs[dir] = entries
	if _, ok := s.stats[dir]; !ok {
		s.stats[dir] = files.NewFileInfo(files.NewDirEntry(path.Base(dir), true))
	}
	return s
}

// SetStat overrides what Stat reports for name, e.g. the target of a link.
func (s *Store) SetStat(name string, info os.FileInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats[name] = info
}

// FailReadDir makes ReadDir of dir return err.
func (s *Store) FailReadDir(dir string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr[dir] = err
}

// Reads returns the directories passed to ReadDir, in call order.
func (s *Store) Reads() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.reads)
}

func (s *Store) RootTitle() string {
	return "memory"
}

func (s *Store) RootURL() url.URL {
	return url.URL{Scheme: "mem", Path: "/"}
}

func (s *Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads = append(s.reads, name)
	if err := s.readErr[name]; err != nil {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: err}
	}
	entries, ok := s.dirs[name]
	if !ok {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}
	return slices.Clone(entries), nil
}

func (s *Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	info, ok := s.stats[name]
	if !ok || info == nil {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return info, nil
}
