package goquery_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/htmlgrade"
	"github.com/fwojciec/htmlgrade/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements htmlgrade.Parser at compile time.
var _ htmlgrade.Parser = (*goquery.Parser)(nil)

const page = `<!DOCTYPE html>
<html>
<head><title>Bitstarter</title></head>
<body>
<div class="navbar"><a href="/about">About</a><a>No link</a></div>
<h1>Title</h1>
<h2 id="subtitle">Subtitle</h2>
<ul class="list"><li>One</li><li>Two</li></ul>
<form><input type="email" name="email"></form>
</body>
</html>`

func parse(t *testing.T, html string) htmlgrade.Document {
	t.Helper()

	doc, err := goquery.NewParser().Parse(context.Background(), strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestDocument_MatchCount(t *testing.T) {
	t.Parallel()

	doc := parse(t, page)

	tests := []struct {
		name     string
		selector string
		want     int
	}{
		{name: "tag", selector: "h1", want: 1},
		{name: "missing tag", selector: "h3", want: 0},
		{name: "id", selector: "h2#subtitle", want: 1},
		{name: "class", selector: ".navbar", want: 1},
		{name: "attribute presence", selector: "a[href]", want: 1},
		{name: "attribute value", selector: `input[type="email"]`, want: 1},
		{name: "child combinator", selector: "ul.list > li", want: 2},
		{name: "descendant combinator", selector: "body li", want: 2},
		{name: "group", selector: "h1, h2", want: 2},
		{name: "no match", selector: "section.hero", want: 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := doc.MatchCount(tt.selector)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument_MatchCount_InvalidSelector(t *testing.T) {
	t.Parallel()

	doc := parse(t, page)

	n, err := doc.MatchCount("a[href")

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, htmlgrade.EINVALID, htmlgrade.ErrorCode(err))
	assert.Contains(t, htmlgrade.ErrorMessage(err), "a[href")
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("tolerates malformed markup", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<h1>Unclosed<div><p>text</h1></span>`)

		n, err := doc.MatchCount("h1")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("parses empty input", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "")

		n, err := doc.MatchCount("body")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("decodes declared charset", func(t *testing.T) {
		t.Parallel()

		// "caf\xe9" is "café" in ISO-8859-1.
		doc := parse(t, "<html><head><meta charset=\"iso-8859-1\"></head><body><p class=\"caf\xe9\">x</p></body></html>")

		n, err := doc.MatchCount("p.café")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("decodes undeclared non-UTF-8 input as windows-1252", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<p class=\"x\xffy\">x</p>")

		n, err := doc.MatchCount("p.xÿy")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("keeps undeclared UTF-8 input as UTF-8", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, "<p class=\"naïve\">x</p>")

		n, err := doc.MatchCount("p.naïve")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("uses content type hint", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewParser(goquery.WithContentType("text/html; charset=iso-8859-1"))
		doc, err := p.Parse(context.Background(), strings.NewReader("<p id=\"caf\xe9\">x</p>"))
		require.NoError(t, err)

		n, err := doc.MatchCount("#café")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("returns EMALFORMED when reader fails", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewParser().Parse(context.Background(), failingReader{})

		require.Error(t, err)
		assert.Equal(t, htmlgrade.EMALFORMED, htmlgrade.ErrorCode(err))
	})
}

func TestReport_Scenarios(t *testing.T) {
	t.Parallel()

	t.Run("present and absent tags", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><h1>Hello</h1></body></html>`)
		checks := htmlgrade.CheckList{"h2", "h1"}.Sorted()

		result, err := htmlgrade.Report(doc, checks, htmlgrade.ReportOptions{})

		require.NoError(t, err)
		assert.Equal(t, []htmlgrade.CheckResult{
			{Selector: "h1", Present: true},
			{Selector: "h2", Present: false},
		}, result.Entries())
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}
