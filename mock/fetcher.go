package mock

import (
	"context"

	"github.com/fwojciec/htmlgrade"
)

var _ htmlgrade.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of htmlgrade.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ htmlgrade.DownloadStore = (*DownloadStore)(nil)

// DownloadStore is a mock implementation of htmlgrade.DownloadStore.
type DownloadStore struct {
	SaveFn func(ctx context.Context, html string) (string, error)
}

func (s *DownloadStore) Save(ctx context.Context, html string) (string, error) {
	return s.SaveFn(ctx, html)
}

var _ htmlgrade.HTMLReader = (*HTMLReader)(nil)

// HTMLReader is a mock implementation of htmlgrade.HTMLReader.
type HTMLReader struct {
	ReadHTMLFn func(ctx context.Context, path string) ([]byte, error)
}

func (r *HTMLReader) ReadHTML(ctx context.Context, path string) ([]byte, error) {
	return r.ReadHTMLFn(ctx, path)
}
