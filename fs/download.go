package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/htmlgrade"
)

// DefaultDownloadFile is where fetched HTML is stored when no path is given.
const DefaultDownloadFile = "downloadedindex.html"

// Ensure DownloadStore implements htmlgrade.DownloadStore at compile time.
var _ htmlgrade.DownloadStore = (*DownloadStore)(nil)

// DownloadStore writes fetched HTML to a single fixed file. Each Save
// replaces the previous content. Content is written to a temporary file
// next to the target and renamed into place.
type DownloadStore struct {
	path string
}

// NewDownloadStore creates a DownloadStore writing to path.
// An empty path selects DefaultDownloadFile in the working directory.
func NewDownloadStore(path string) *DownloadStore {
	if path == "" {
		path = DefaultDownloadFile
	}
	return &DownloadStore{path: path}
}

// Path returns the file the store writes to.
func (s *DownloadStore) Path() string {
	return s.path
}

// Save writes html to the store's file and returns its path.
func (s *DownloadStore) Save(ctx context.Context, html string) (string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to create %q: %v", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to create temporary file: %v", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to write %q: %v", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to write %q: %v", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to write %q: %v", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return "", htmlgrade.Errorf(htmlgrade.EIO, "failed to write %q: %v", s.path, err)
	}
	return s.path, nil
}
