// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"hetscan-core/engine"
)

// Canonical header rows. Single source of truth for writers and the
// plot-side reader.
const (
	ComparisonHeader = "Scaffold\tPO.het_Male\tPO.het_Female\tsem_Male\tsem_Female\tp.value\tmethod\tSignificant"
	CandidateHeader  = "Scaffold\tPO.het_Female\tPO.het_Male\tsem_Female\tsem_Male\tp.value\tmethod"
)

func f64(v float64) string { return strconv.FormatFloat(v, 'g', 6, 64) }

// WriteComparisonsTSV writes the full per-scaffold comparison table.
func WriteComparisonsTSV(w io.Writer, list []engine.Comparison, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, ComparisonHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Scaffold,
			f64(c.MeanMale), f64(c.MeanFemale),
			f64(c.SEMMale), f64(c.SEMFemale),
			f64(c.P), c.Method, c.Significant,
		); err != nil {
			return err
		}
	}
	return nil
}

// WriteCandidatesTSV writes the filtered candidate table. The column
// order leads with the heterogametic-sex convention of the original
// report (female first).
func WriteCandidatesTSV(w io.Writer, list []engine.Comparison, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, CandidateHeader); err != nil {
			return err
		}
	}
	for _, c := range list {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.Scaffold,
			f64(c.MeanFemale), f64(c.MeanMale),
			f64(c.SEMFemale), f64(c.SEMMale),
			f64(c.P), c.Method,
		); err != nil {
			return err
		}
	}
	return nil
}
