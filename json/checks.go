// Package json reads checks files and writes grading results as JSON.
package json

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/fwojciec/htmlgrade"
)

// DefaultChecksFile is the checks file used when none is given.
const DefaultChecksFile = "checks.json"

// Ensure ChecksLoader implements htmlgrade.ChecksLoader at compile time.
var _ htmlgrade.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader loads checks files containing a JSON array of selectors.
type ChecksLoader struct{}

// NewChecksLoader creates a new ChecksLoader.
func NewChecksLoader() *ChecksLoader {
	return &ChecksLoader{}
}

// LoadChecks reads the checks file at path and returns its selectors sorted.
func (l *ChecksLoader) LoadChecks(ctx context.Context, path string) (htmlgrade.CheckList, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, htmlgrade.Errorf(htmlgrade.ENOTFOUND, "%s does not exist. Exiting.", path)
	} else if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EIO, "failed to open checks file %q: %v", path, err)
	}
	defer f.Close()

	checks, err := DecodeChecks(f)
	if err != nil {
		if htmlgrade.ErrorCode(err) == htmlgrade.EPARSE {
			return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "invalid checks file %q: %s", path, htmlgrade.ErrorMessage(err))
		}
		return nil, err
	}
	return checks, nil
}

// DecodeChecks decodes a JSON array of selector strings from r and returns
// them sorted. Returns EPARSE if the content is not such an array.
func DecodeChecks(r io.Reader) (htmlgrade.CheckList, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EIO, "failed to read checks: %v", err)
	}

	// Pointers distinguish a null element from an empty string.
	var raw []*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "%v", err)
	}
	if raw == nil {
		return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "expected a JSON array of selectors")
	}

	checks := make(htmlgrade.CheckList, 0, len(raw))
	for i, selector := range raw {
		if selector == nil {
			return nil, htmlgrade.Errorf(htmlgrade.EPARSE, "expected a JSON array of selectors, element %d is null", i)
		}
		checks = append(checks, *selector)
	}
	return checks.Sorted(), nil
}
