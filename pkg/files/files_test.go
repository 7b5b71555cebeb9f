package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDirEntry(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		name := "testfile.png"
		const isDir = false
		de := NewDirEntry(name, isDir)

		if de.Name() != name {
			t.Errorf("expected Name() = %v, got %v", name, de.Name())
		}
		if de.IsDir() != isDir {
			t.Errorf("expected IsDir() = %v, got %v", isDir, de.IsDir())
		}
		if de.Type() != 0 {
			t.Errorf("expected Type() = 0, got %v", de.Type())
		}
	})

	t.Run("directory", func(t *testing.T) {
		de := NewDirEntry("testdir", true)
		if !de.IsDir() {
			t.Errorf("expected IsDir() = true")
		}
		if de.Type() != os.ModeDir {
			t.Errorf("expected Type() = %v, got %v", os.ModeDir, de.Type())
		}
		info, err := de.Info()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.IsDir() || !info.Mode().IsDir() {
			t.Errorf("expected info to describe a directory, got mode %v", info.Mode())
		}
	})

	t.Run("symlink", func(t *testing.T) {
		de := NewDirEntry("link", true, Symlink())
		if de.IsDir() {
			t.Errorf("expected symlink entry to report IsDir() = false")
		}
		if de.Type()&os.ModeSymlink == 0 {
			t.Errorf("expected symlink type bit, got %v", de.Type())
		}
	})

	t.Run("with_info", func(t *testing.T) {
		name := "testfile"
		size := int64(123)
		modTime := time.Now()
		de := NewDirEntry(name, false, Size(size), ModTime(modTime))

		info, err := de.Info()
		if err != nil {
			t.Errorf("expected no error from Info(), got %v", err)
		}
		if info == nil {
			t.Fatal("expected non-nil info")
		}
		if info.Name() != name {
			t.Errorf("expected info.Name() = %v, got %v", name, info.Name())
		}
		if info.Size() != size {
			t.Errorf("expected info.Size() = %v, got %v", size, info.Size())
		}
		if !info.ModTime().Equal(modTime) {
			t.Errorf("expected info.ModTime() = %v, got %v", modTime, info.ModTime())
		}
		if info.Sys() != nil {
			t.Errorf("expected info.Sys() = nil, got %v", info.Sys())
		}
	})
}

func TestNewDirEntry_PanicsOnNameWithPath(t *testing.T) {
	name := filepath.Join("parent", "child")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for name with path")
		}
	}()
	_ = NewDirEntry(name, false)
}

func TestFileInfo_NilReceiver(t *testing.T) {
	var f *FileInfo
	if f.Name() != "" {
		t.Errorf("expected empty name for nil FileInfo")
	}
	if f.Size() != 0 {
		t.Errorf("expected 0 size for nil FileInfo")
	}
	if f.Mode() != 0 {
		t.Errorf("expected 0 mode for nil FileInfo")
	}
	if !f.ModTime().IsZero() {
		t.Errorf("expected zero modTime for nil FileInfo")
	}
	if f.IsDir() {
		t.Errorf("expected false for IsDir() for nil FileInfo")
	}
}
