// Package fs provides file-based HTML sources and download storage.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/fwojciec/htmlgrade"
)

// AssertExists returns ENOTFOUND if nothing exists at path.
func AssertExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist. Exiting.", path)
	} else if err != nil {
		return htmlgrade.Errorf(htmlgrade.EIO, "failed to stat %q: %v", path, err)
	}
	return nil
}

// ReadHTML reads the HTML file at path.
// Returns ENOTFOUND if the file is missing and EIO on any other failure.
func ReadHTML(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist. Exiting.", path)
	} else if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EIO, "failed to read %q: %v", path, err)
	}
	return data, nil
}

// Ensure Reader implements htmlgrade.HTMLReader at compile time.
var _ htmlgrade.HTMLReader = (*Reader)(nil)

// Reader reads HTML files from the local filesystem.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ReadHTML reads the HTML file at path.
func (r *Reader) ReadHTML(ctx context.Context, path string) ([]byte, error) {
	return ReadHTML(path)
}
