package files

import (
	"os"
	"time"
)

type FileInfoOption func(*FileInfo)

var _ os.FileInfo = (*FileInfo)(nil)

type FileInfo struct {
	DirEntry
	size    int64
	modTime time.Time
}

func NewFileInfo(dirEntry DirEntry, o ...FileInfoOption) (info *FileInfo) {
	info = &FileInfo{
		DirEntry: dirEntry,
	}
	for _, opt := range o {
		opt(info)
	}
	return
}

func Size(v int64) FileInfoOption {
	return func(info *FileInfo) {
		info.size = v
	}
}

func ModTime(v time.Time) FileInfoOption {
	return func(info *FileInfo) {
		info.modTime = v
	}
}

// Symlink marks the entry as a symbolic link. IsDir then reports false,
// the way os.ReadDir reports links.
func Symlink() FileInfoOption {
	return func(info *FileInfo) {
		info.mode = info.mode&^os.ModeDir | os.ModeSymlink
		info.isDir = false
	}
}

func (f *FileInfo) Name() string {
	if f == nil {
		return ""
	}
	return f.name
}
func (f *FileInfo) Size() int64 {
	if f == nil {
		return 0
	}
	return f.size
}
func (f *FileInfo) Mode() os.FileMode {
	if f == nil {
		return 0
	}
	return f.mode
}
func (f *FileInfo) ModTime() time.Time {
	if f == nil {
		return time.Time{}
	}
	return f.modTime
}
func (f *FileInfo) IsDir() bool {
	if f == nil {
		return false
	}
	return f.isDir
}
func (f *FileInfo) Sys() any {
	return nil
}
