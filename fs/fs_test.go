package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertExists(t *testing.T) {
	t.Parallel()

	t.Run("accepts existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0644))

		assert.NoError(t, fs.AssertExists(path))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.html")

		err := fs.AssertExists(path)

		require.Error(t, err)
		assert.Equal(t, htmlgrade.ENOTFOUND, htmlgrade.ErrorCode(err))
		assert.Equal(t, path+" does not exist. Exiting.", htmlgrade.ErrorMessage(err))
	})
}

func TestReadHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>Hi</h1>"), 0644))

		data, err := fs.ReadHTML(path)

		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", string(data))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadHTML(filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, htmlgrade.ENOTFOUND, htmlgrade.ErrorCode(err))
	})

	t.Run("returns EIO for a directory", func(t *testing.T) {
		t.Parallel()

		_, err := fs.ReadHTML(t.TempDir())

		require.Error(t, err)
		assert.Equal(t, htmlgrade.EIO, htmlgrade.ErrorCode(err))
	})
}

func TestDownloadStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ htmlgrade.DownloadStore = &fs.DownloadStore{}
}

func TestNewDownloadStore_DefaultPath(t *testing.T) {
	t.Parallel()

	s := fs.NewDownloadStore("")

	assert.Equal(t, fs.DefaultDownloadFile, s.Path())
}

func TestDownloadStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("writes html to path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "downloaded.html")
		s := fs.NewDownloadStore(path)

		got, err := s.Save(context.Background(), "<h1>Hi</h1>")

		require.NoError(t, err)
		assert.Equal(t, path, got)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", string(content))
	})

	t.Run("overwrites previous download", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "downloaded.html")
		s := fs.NewDownloadStore(path)

		_, err := s.Save(context.Background(), "<h1>First, and longer</h1>")
		require.NoError(t, err)
		_, err = s.Save(context.Background(), "<h2>Second</h2>")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "<h2>Second</h2>", string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "downloaded.html")
		s := fs.NewDownloadStore(path)

		_, err := s.Save(context.Background(), "<p>x</p>")

		require.NoError(t, err)
		_, err = os.Stat(path)
		require.NoError(t, err)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		s := fs.NewDownloadStore(filepath.Join(dir, "downloaded.html"))

		_, err := s.Save(context.Background(), "<p>x</p>")
		require.NoError(t, err)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "downloaded.html", entries[0].Name())
	})
}

func TestReader_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ htmlgrade.HTMLReader = fs.NewReader()
}

func TestReader_ReadHTML(t *testing.T) {
	t.Parallel()

	t.Run("returns file content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "index.html")
		require.NoError(t, os.WriteFile(path, []byte("<h1>Hi</h1>"), 0644))

		data, err := fs.NewReader().ReadHTML(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "<h1>Hi</h1>", string(data))
	})

	t.Run("returns ENOTFOUND for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := fs.NewReader().ReadHTML(context.Background(), filepath.Join(t.TempDir(), "missing.html"))

		require.Error(t, err)
		assert.Equal(t, htmlgrade.ENOTFOUND, htmlgrade.ErrorCode(err))
	})
}
