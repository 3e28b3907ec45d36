package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/hindsight"
)

// printQuery prints the value selected by a JSONPath expression in the JSON
// form of the report.
func printQuery(w io.Writer, r *hindsight.Report, path string) error {
	v, err := hindsight.ReportValue(r)
	if err != nil {
		return err
	}
	val, err := jsonpath.Get(path, v)
	if err != nil {
		return fmt.Errorf("invalid query %q: %w", path, err)
	}
	// strings are printed raw, to be easily used in scripts.
	if s, ok := val.(string); ok {
		_, err := fmt.Fprintln(w, s)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(val)
}
