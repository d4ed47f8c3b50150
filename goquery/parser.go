// Package goquery implements htmlgrade.Parser and htmlgrade.Document on top
// of goquery and cascadia.
package goquery

import (
	"bytes"
	"context"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/htmlgrade"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Ensure Parser implements htmlgrade.Parser at compile time.
var _ htmlgrade.Parser = (*Parser)(nil)

// Parser parses HTML into goquery documents. Input is decoded to UTF-8
// using the byte order mark or <meta charset> declaration before parsing.
// Undeclared input that is not valid UTF-8 is decoded as windows-1252.
type Parser struct {
	contentType string
}

// Option configures a Parser.
type Option func(*Parser)

// WithContentType sets the Content-Type header value used as a charset hint.
func WithContentType(contentType string) Option {
	return func(p *Parser) {
		p.contentType = contentType
	}
}

// NewParser creates a new Parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads all of r and parses it as HTML. The HTML5 parsing algorithm
// recovers from malformed markup, so only read failures are reported.
func (p *Parser) Parse(ctx context.Context, r io.Reader) (htmlgrade.Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EMALFORMED, "failed to read HTML: %v", err)
	}

	// Fall back to the raw bytes when the declared charset is unknown.
	var src io.Reader = bytes.NewReader(raw)
	if decoded, err := charset.NewReader(bytes.NewReader(raw), p.contentType); err == nil {
		src = decoded
	}

	root, err := html.Parse(src)
	if err != nil {
		return nil, htmlgrade.Errorf(htmlgrade.EMALFORMED, "failed to parse HTML: %v", err)
	}

	return &Document{doc: goquery.NewDocumentFromNode(root)}, nil
}

// Ensure Document implements htmlgrade.Document at compile time.
var _ htmlgrade.Document = (*Document)(nil)

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// MatchCount returns the number of nodes matching selector.
// Selectors are compiled with cascadia; a compile failure returns EINVALID.
func (d *Document) MatchCount(selector string) (int, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return 0, htmlgrade.Errorf(htmlgrade.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return d.doc.FindMatcher(sel).Length(), nil
}
