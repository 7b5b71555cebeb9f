package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry builds an os.DirEntry that is not backed by a real file.
func NewDirEntry(name string, isDir bool, o ...FileInfoOption) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	dirEntry := DirEntry{
		name:  name,
		isDir: isDir,
	}
	if isDir {
		dirEntry.mode = os.ModeDir
	}
	dirEntry.info = NewFileInfo(dirEntry, o...)
	dirEntry.mode = dirEntry.info.mode
	dirEntry.isDir = dirEntry.info.isDir
	return dirEntry
}

var _ os.DirEntry = (*DirEntry)(nil)

type DirEntry struct {
	name  string
	isDir bool
	mode  os.FileMode
	info  *FileInfo
}

func (d DirEntry) Name() string      { return d.name }
func (d DirEntry) IsDir() bool       { return d.isDir }
func (d DirEntry) Type() os.FileMode { return d.mode.Type() }
func (d DirEntry) Info() (os.FileInfo, error) {
	if d.info == nil {
		return nil, nil
	}
	return d.info, nil
}
