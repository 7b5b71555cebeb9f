package osfile

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/datatug/imgtug/pkg/files"
)

var osReadDir = os.ReadDir
var osStat = os.Stat
var osHostname = os.Hostname

var _ files.Store = (*Store)(nil)

// Store reads the local filesystem.
type Store struct {
	title string
	root  string
}

func (s Store) RootURL() url.URL {
	return url.URL{
		Scheme: "file",
		Path:   s.root,
	}
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symlinks, so a link to a directory reports IsDir.
func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func NewStore(root string) *Store {
	if root == "" {
		root = "/"
	}
	store := Store{root: root}
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}
