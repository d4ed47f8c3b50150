package htmlgrade

import (
	"context"
	"io"
)

// Document is a parsed HTML document that can be queried with CSS selectors.
type Document interface {
	// MatchCount returns the number of nodes matching selector.
	// Returns EINVALID if the selector cannot be compiled.
	MatchCount(selector string) (int, error)
}

// Parser turns raw HTML into a queryable Document.
type Parser interface {
	// Parse reads HTML from r. Malformed markup is tolerated; EMALFORMED is
	// returned only when no document can be produced at all.
	Parse(ctx context.Context, r io.Reader) (Document, error)
}

// Reporter writes a Result to an output stream.
type Reporter interface {
	Emit(w io.Writer, result *Result) error
}
