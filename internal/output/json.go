// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"hetscan-core/engine"
	"hetscan/pkg/api"
)

// ToAPI converts a comparison row to its stable wire form.
func ToAPI(c engine.Comparison) api.ComparisonV1 {
	return api.ComparisonV1{
		Scaffold:    c.Scaffold,
		NMale:       c.NMale,
		NFemale:     c.NFemale,
		MeanMale:    c.MeanMale,
		MeanFemale:  c.MeanFemale,
		SEMMale:     c.SEMMale,
		SEMFemale:   c.SEMFemale,
		T:           c.T,
		DF:          c.DF,
		P:           c.P,
		Method:      c.Method,
		Significant: c.Significant,
	}
}

// WriteJSON writes comparison rows as an indented JSON array.
func WriteJSON(w io.Writer, list []engine.Comparison) error {
	rows := make([]api.ComparisonV1, 0, len(list))
	for _, c := range list {
		rows = append(rows, ToAPI(c))
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false) // keep "p-value < 0.001" readable
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
