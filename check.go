package htmlgrade

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
)

// CheckList is an ordered list of CSS selectors to test for presence.
type CheckList []string

// Sorted returns a copy of the list in ascending lexicographic order.
func (c CheckList) Sorted() CheckList {
	sorted := slices.Clone(c)
	slices.Sort(sorted)
	return sorted
}

// ChecksLoader reads a CheckList from storage.
type ChecksLoader interface {
	// LoadChecks reads the checks at path and returns them sorted.
	// Returns ENOTFOUND if path does not exist and EPARSE if the content
	// is not a JSON array of strings.
	LoadChecks(ctx context.Context, path string) (CheckList, error)
}

// CheckResult is the outcome of testing a single selector.
type CheckResult struct {
	Selector string
	Present  bool
}

// Result maps selectors to their presence, preserving insertion order.
// The zero value is an empty result ready to use.
type Result struct {
	entries []CheckResult
	index   map[string]int
}

// Set records the presence of selector. Setting an existing selector
// overwrites its value and keeps its original position.
func (r *Result) Set(selector string, present bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[selector]; ok {
		r.entries[i].Present = present
		return
	}
	r.index[selector] = len(r.entries)
	r.entries = append(r.entries, CheckResult{Selector: selector, Present: present})
}

// Get returns the presence recorded for selector and whether it was recorded.
func (r *Result) Get(selector string) (present, ok bool) {
	i, ok := r.index[selector]
	if !ok {
		return false, false
	}
	return r.entries[i].Present, true
}

// Len returns the number of distinct selectors in the result.
func (r *Result) Len() int {
	return len(r.entries)
}

// Entries returns the results in insertion order.
func (r *Result) Entries() []CheckResult {
	return slices.Clone(r.entries)
}

// MarshalJSON encodes the result as a JSON object whose keys appear in
// insertion order. Selector keys are written without HTML escaping.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	var out bytes.Buffer
	out.WriteByte('{')
	for i, e := range r.entries {
		if i > 0 {
			out.WriteByte(',')
		}
		buf.Reset()
		if err := enc.Encode(e.Selector); err != nil {
			return nil, err
		}
		out.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
		out.WriteByte(':')
		if e.Present {
			out.WriteString("true")
		} else {
			out.WriteString("false")
		}
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// ReportOptions controls how Report treats selectors the query engine
// cannot compile.
type ReportOptions struct {
	// Strict makes an invalid selector abort the report with EINVALID.
	// Otherwise an invalid selector is reported as not present.
	Strict bool
}

// Evaluate reports whether selector matches at least one node in doc.
// A selector the query engine rejects evaluates to false.
func Evaluate(doc Document, selector string) bool {
	n, err := doc.MatchCount(selector)
	return err == nil && n > 0
}

// Report evaluates every selector in checks against doc, in order, and
// returns the collected result. Duplicate selectors collapse to one entry.
func Report(doc Document, checks CheckList, opts ReportOptions) (*Result, error) {
	result := &Result{}
	for _, selector := range checks {
		if !opts.Strict {
			result.Set(selector, Evaluate(doc, selector))
			continue
		}
		n, err := doc.MatchCount(selector)
		if err != nil {
			return nil, err
		}
		result.Set(selector, n > 0)
	}
	return result, nil
}
