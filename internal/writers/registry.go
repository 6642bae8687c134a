// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"hetscan-core/engine"
	"hetscan/internal/output"
)

// Table selects which of the two report tables a writer emits.
type Table int

const (
	Comparisons Table = iota
	Candidates
)

// WriterFunc serializes a finished table in one format.
type WriterFunc func(w io.Writer, list []engine.Comparison, header bool) error

var registry = map[Table]map[string]WriterFunc{
	Comparisons: {
		output.FormatText: output.WriteComparisonsTSV,
		output.FormatJSON: func(w io.Writer, list []engine.Comparison, _ bool) error {
			return output.WriteJSON(w, list)
		},
	},
	Candidates: {
		output.FormatText: output.WriteCandidatesTSV,
		output.FormatJSON: func(w io.Writer, list []engine.Comparison, _ bool) error {
			return output.WriteJSON(w, list)
		},
	},
}

// Register installs a writer for a (table, format) pair (last wins).
func Register(tbl Table, format string, fn WriterFunc) {
	registry[tbl][format] = fn
}

// Write dispatches to the registered writer.
func Write(tbl Table, format string, w io.Writer, list []engine.Comparison, header bool) error {
	fn, ok := registry[tbl][format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, list, header)
}
