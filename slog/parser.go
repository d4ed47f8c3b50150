package slog

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/htmlgrade"
)

// Ensure LoggingParser implements htmlgrade.Parser.
var _ htmlgrade.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   htmlgrade.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next htmlgrade.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(ctx context.Context, r io.Reader) (doc htmlgrade.Document, err error) {
	cr := &countingReader{r: r}
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"bytes", cr.n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(ctx, cr)
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	c.n += int64(n)
	return n, err
}

// Ensure LoggingChecksLoader implements htmlgrade.ChecksLoader.
var _ htmlgrade.ChecksLoader = (*LoggingChecksLoader)(nil)

// LoggingChecksLoader wraps a ChecksLoader with logging.
type LoggingChecksLoader struct {
	next   htmlgrade.ChecksLoader
	logger *slog.Logger
}

// NewLoggingChecksLoader creates a new LoggingChecksLoader.
func NewLoggingChecksLoader(next htmlgrade.ChecksLoader, logger *slog.Logger) *LoggingChecksLoader {
	return &LoggingChecksLoader{next: next, logger: logger}
}

// LoadChecks delegates to the wrapped loader and logs the operation.
func (l *LoggingChecksLoader) LoadChecks(ctx context.Context, path string) (checks htmlgrade.CheckList, err error) {
	defer func(begin time.Time) {
		l.logger.Info("load checks",
			"path", path,
			"count", len(checks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadChecks(ctx, path)
}
