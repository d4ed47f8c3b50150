package json

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/fwojciec/htmlgrade"
)

// Indent is the indentation used for emitted results.
const Indent = "    "

// Ensure Reporter implements htmlgrade.Reporter at compile time.
var _ htmlgrade.Reporter = (*Reporter)(nil)

// Reporter writes results as indented JSON objects.
type Reporter struct{}

// NewReporter creates a new Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Emit writes result to w as a single indented JSON object followed by a
// newline. Nothing is written if encoding fails.
func (r *Reporter) Emit(w io.Writer, result *htmlgrade.Result) error {
	compact, err := result.MarshalJSON()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", Indent); err != nil {
		return err
	}
	buf.WriteByte('\n')

	_, err = w.Write(buf.Bytes())
	return err
}
