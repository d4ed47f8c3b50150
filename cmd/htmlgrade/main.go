package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/fs"
	"github.com/fwojciec/htmlgrade/goquery"
	"github.com/fwojciec/htmlgrade/grade"
	gradehttp "github.com/fwojciec/htmlgrade/http"
	"github.com/fwojciec/htmlgrade/json"
	gradeslog "github.com/fwojciec/htmlgrade/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, FormatError(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Reporter writes the final result. Defaults to indented JSON.
	Reporter htmlgrade.Reporter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Reporter: json.NewReporter(),
	}
}

// Run executes the CLI with the given arguments. The result is written to
// stdout only when every check was evaluated.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("htmlgrade"),
		kong.Description("Check an HTML file or URL for the presence of CSS selectors"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Exactly one source must be chosen before touching the filesystem.
	src, err := htmlgrade.NewSource(cli.File, cli.URL)
	if err != nil {
		return err
	}
	if err := fs.AssertExists(cli.Checks); err != nil {
		return err
	}
	if file, ok := src.(htmlgrade.FileSource); ok {
		if err := fs.AssertExists(file.Path); err != nil {
			return err
		}
	}

	logger := newLogger(stderr, cli.Verbose)

	fetcher := gradeslog.NewLoggingFetcher(
		gradehttp.NewFetcher(gradehttp.WithTimeout(cli.Timeout)),
		logger,
	)
	defer fetcher.Close()

	g := &grade.Grader{
		Checks:    gradeslog.NewLoggingChecksLoader(json.NewChecksLoader(), logger),
		Files:     fs.NewReader(),
		Parser:    gradeslog.NewLoggingParser(goquery.NewParser(), logger),
		Fetcher:   fetcher,
		Downloads: fs.NewDownloadStore(cli.Download),
		Logger:    logger,
		Strict:    cli.Strict,
	}

	result, err := g.Grade(ctx, src, cli.Checks)
	if err != nil {
		return err
	}

	return m.Reporter.Emit(stdout, result)
}

// FormatError renders err as the diagnostic shown to the user.
func FormatError(err error) string {
	switch htmlgrade.ErrorCode(err) {
	case htmlgrade.ENETWORK:
		return "Error: " + htmlgrade.ErrorMessage(err)
	case htmlgrade.EPARSE:
		return "Fatal: " + htmlgrade.ErrorMessage(err)
	case htmlgrade.EINTERNAL:
		return err.Error()
	default:
		return htmlgrade.ErrorMessage(err)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
