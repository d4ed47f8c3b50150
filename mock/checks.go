package mock

import (
	"context"

	"github.com/fwojciec/htmlgrade"
)

var _ htmlgrade.ChecksLoader = (*ChecksLoader)(nil)

// ChecksLoader is a mock implementation of htmlgrade.ChecksLoader.
type ChecksLoader struct {
	LoadChecksFn func(ctx context.Context, path string) (htmlgrade.CheckList, error)
}

func (l *ChecksLoader) LoadChecks(ctx context.Context, path string) (htmlgrade.CheckList, error) {
	return l.LoadChecksFn(ctx, path)
}

// Selectors returns a Document whose MatchCount reports counts[selector]
// and zero for any selector not in counts.
func Selectors(counts map[string]int) *Document {
	return &Document{
		MatchCountFn: func(selector string) (int, error) {
			return counts[selector], nil
		},
	}
}
