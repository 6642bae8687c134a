// core/engine/compare.go
package engine

import (
	"fmt"

	"hetscan-core/stats"
)

// Compare runs the two-sample test for one scaffold's summary row,
// given its male and female PropObsHet samples, and classifies the
// p-value. An undefined test (too few observations, constant data)
// surfaces the underlying stats error wrapped with the scaffold name;
// NaN p-values are never produced.
func (e *Engine) Compare(s Summary, male, female []float64) (Comparison, error) {
	tt, err := stats.WelchTTest(male, female)
	if err != nil {
		return Comparison{}, fmt.Errorf("scaffold %s: %w", s.Scaffold, err)
	}
	return Comparison{
		Summary:     s,
		T:           tt.T,
		DF:          tt.DF,
		P:           tt.P,
		Method:      tt.Method,
		Significant: e.Label(tt.P),
	}, nil
}
