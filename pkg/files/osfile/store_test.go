package osfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	origHostname := osHostname
	defer func() { osHostname = origHostname }()

	t.Run("valid_root", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "test-host", nil
		}
		s := NewStore("/tmp")
		assert.NotNil(t, s)
		assert.Equal(t, "/tmp", s.root)
		assert.Equal(t, "test-host", s.title)
	})

	t.Run("hostname_error", func(t *testing.T) {
		osHostname = func() (string, error) {
			return "", errors.New("hostname error")
		}
		s := NewStore("/tmp")
		assert.Equal(t, "hostname error", s.title)
	})

	t.Run("empty_root_defaults_to_slash", func(t *testing.T) {
		s := NewStore("")
		assert.Equal(t, "/", s.root)
	})
}

func TestStore_RootURL(t *testing.T) {
	s := NewStore("/tmp")
	u := s.RootURL()
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, "/tmp", u.Path)
}

func TestStore_RootTitle(t *testing.T) {
	s := Store{title: "my-host.local"}
	assert.Equal(t, "my-host", s.RootTitle())

	s = Store{title: "my-host"}
	assert.Equal(t, "my-host", s.RootTitle())
}

func TestStore_ReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.png"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	s := NewStore(dir)

	t.Run("success", func(t *testing.T) {
		entries, err := s.ReadDir(context.Background(), dir)
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := s.ReadDir(ctx, dir)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("not_exists", func(t *testing.T) {
		_, err := s.ReadDir(context.Background(), filepath.Join(dir, "missing"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestStore_Stat(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	link := filepath.Join(dir, "link")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	s := NewStore(dir)
	info, err := s.Stat(context.Background(), link)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Stat(ctx, link)
	assert.ErrorIs(t, err, context.Canceled)
}
