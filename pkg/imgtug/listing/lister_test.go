package listing

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/datatug/imgtug/pkg/files"
	"github.com/datatug/imgtug/pkg/files/memfile"
	"github.com/datatug/imgtug/pkg/files/osfile"
	"github.com/datatug/imgtug/pkg/imgtug/masks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Name
	}
	return result
}

func TestLister_List_OnDisk(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img10.png", "img2.png", "img1.PNG", "notes.txt", "photo.jpg", ".hidden.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	for _, name := range []string{"b", "A", "c10", "c9"} {
		require.NoError(t, os.Mkdir(filepath.Join(dir, name), 0o755))
	}

	lister := NewLister(osfile.NewStore(dir))
	entries, err := lister.List(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "b", "c9", "c10", ".hidden.png", "img1.PNG", "img2.png", "img10.png"}, names(entries))
	for _, e := range entries {
		assert.True(t, e.IsDir || e.IsImage, "%s must be a directory or an image", e.Name)
		assert.False(t, e.IsDir && e.IsImage)
	}
}

func TestLister_List_DirectoriesFirst(t *testing.T) {
	store := memfile.NewStore().AddDir("/root",
		files.NewDirEntry("b.png", false),
		files.NewDirEntry("A", true),
	)
	entries, err := NewLister(store).List(context.Background(), "/root")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "A", IsDir: true},
		{Name: "b.png", IsImage: true},
	}, entries)
}

func TestLister_List_Empty(t *testing.T) {
	store := memfile.NewStore().AddDir("/empty", files.NewDirEntry("readme.md", false))
	entries, err := NewLister(store).List(context.Background(), "/empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLister_List_Symlinks(t *testing.T) {
	store := memfile.NewStore().AddDir("/root",
		files.NewDirEntry("linked-dir", true, files.Symlink()),
		files.NewDirEntry("linked.png", false, files.Symlink()),
		files.NewDirEntry("dangling", false, files.Symlink()),
	)
	store.SetStat("/root/linked-dir", files.NewFileInfo(files.NewDirEntry("linked-dir", true)))
	store.SetStat("/root/dangling", nil)

	entries, err := NewLister(store).List(context.Background(), "/root")
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "linked-dir", IsDir: true},
		{Name: "linked.png", IsImage: true},
	}, entries)
}

func TestLister_List_CustomMask(t *testing.T) {
	mask, err := masks.NewMask("photos", "*.{png,jpg}", "!*.tmp.png")
	require.NoError(t, err)
	store := memfile.NewStore().AddDir("/root",
		files.NewDirEntry("a.jpg", false),
		files.NewDirEntry("b.tmp.png", false),
		files.NewDirEntry("c.png", false),
	)
	entries, err := NewLister(store, WithMask(mask)).List(context.Background(), "/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg", "c.png"}, names(entries))
}

func TestLister_List_AccessError(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		_, err := NewLister(memfile.NewStore()).List(context.Background(), "/missing")
		var accessErr *AccessError
		require.ErrorAs(t, err, &accessErr)
		assert.Equal(t, "/missing", accessErr.Path)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "/missing")
	})

	t.Run("permission", func(t *testing.T) {
		store := memfile.NewStore().AddDir("/locked")
		store.FailReadDir("/locked", fs.ErrPermission)
		_, err := NewLister(store).List(context.Background(), "/locked")
		assert.ErrorIs(t, err, fs.ErrPermission)
	})

	t.Run("not_a_directory", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "file.png")
		require.NoError(t, os.WriteFile(file, nil, 0o644))
		_, err := NewLister(osfile.NewStore(dir)).List(context.Background(), file)
		var accessErr *AccessError
		assert.True(t, errors.As(err, &accessErr))
	})
}

func TestEntry_DisplayName(t *testing.T) {
	assert.Equal(t, "sub/", Entry{Name: "sub", IsDir: true}.DisplayName())
	assert.Equal(t, "a.png", Entry{Name: "a.png", IsImage: true}.DisplayName())
	assert.Equal(t, "../", ParentEntry().DisplayName())
}
