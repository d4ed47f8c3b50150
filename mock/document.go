package mock

import (
	"context"
	"io"

	"github.com/fwojciec/htmlgrade"
)

var _ htmlgrade.Document = (*Document)(nil)

// Document is a mock implementation of htmlgrade.Document.
type Document struct {
	MatchCountFn func(selector string) (int, error)
}

func (d *Document) MatchCount(selector string) (int, error) {
	return d.MatchCountFn(selector)
}

var _ htmlgrade.Parser = (*Parser)(nil)

// Parser is a mock implementation of htmlgrade.Parser.
type Parser struct {
	ParseFn func(ctx context.Context, r io.Reader) (htmlgrade.Document, error)
}

func (p *Parser) Parse(ctx context.Context, r io.Reader) (htmlgrade.Document, error) {
	return p.ParseFn(ctx, r)
}
