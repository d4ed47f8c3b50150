package htmlgrade

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for url and returns the response body.
	// Returns ENETWORK on transport failure or a non-success status.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the Fetcher.
	Close() error
}

// DownloadStore persists fetched HTML so it can be inspected after a run.
type DownloadStore interface {
	// Save writes html to the store's location, replacing any previous
	// content, and returns the path written.
	Save(ctx context.Context, html string) (path string, err error)
}

// HTMLReader reads raw HTML from local storage.
type HTMLReader interface {
	// ReadHTML returns the content of the file at path.
	// Returns ENOTFOUND if the file is missing and EIO on any other failure.
	ReadHTML(ctx context.Context, path string) ([]byte, error)
}
