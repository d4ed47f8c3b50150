// Package grade runs the check pipeline for a single HTML source: load the
// checks, acquire and parse the HTML, then report selector presence.
package grade

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/htmlgrade"
)

// Grader evaluates a checks file against one HTML source.
type Grader struct {
	Checks    htmlgrade.ChecksLoader
	Files     htmlgrade.HTMLReader
	Parser    htmlgrade.Parser
	Fetcher   htmlgrade.Fetcher       // required for URL sources
	Downloads htmlgrade.DownloadStore // required for URL sources
	Logger    *slog.Logger

	// Strict reports invalid selectors as errors instead of absent.
	Strict bool
}

// Grade loads the checks at checksPath and evaluates them against src.
// Any failure ends the run; no partial result is returned.
func (g *Grader) Grade(ctx context.Context, src htmlgrade.Source, checksPath string) (*htmlgrade.Result, error) {
	checks, err := g.Checks.LoadChecks(ctx, checksPath)
	if err != nil {
		return nil, err
	}

	raw, err := g.acquire(ctx, src)
	if err != nil {
		return nil, err
	}

	doc, err := g.Parser.Parse(ctx, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	result, err := htmlgrade.Report(doc, checks, htmlgrade.ReportOptions{Strict: g.Strict})
	if err != nil {
		return nil, err
	}

	g.logger().Debug("graded",
		"source", src.String(),
		"checks", len(checks),
		"distinct", result.Len(),
	)
	return result, nil
}

// acquire returns the raw HTML for src. Fetched HTML is saved to the
// download store and read back from there.
func (g *Grader) acquire(ctx context.Context, src htmlgrade.Source) ([]byte, error) {
	switch src := src.(type) {
	case htmlgrade.FileSource:
		return g.Files.ReadHTML(ctx, src.Path)
	case htmlgrade.URLSource:
		if g.Fetcher == nil || g.Downloads == nil {
			return nil, fmt.Errorf("grade: fetching %s requires a fetcher and download store", src.URL)
		}
		html, err := g.Fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return nil, err
		}
		path, err := g.Downloads.Save(ctx, html)
		if err != nil {
			return nil, err
		}
		return g.Files.ReadHTML(ctx, path)
	default:
		return nil, htmlgrade.Errorf(htmlgrade.EINVALID, htmlgrade.InvalidArgumentsMessage)
	}
}

func (g *Grader) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}
