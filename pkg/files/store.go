package files

import (
	"context"
	"net/url"
	"os"
)

// Store gives read-only access to a tree of directories.
type Store interface {
	RootTitle() string
	RootURL() url.URL
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
}
