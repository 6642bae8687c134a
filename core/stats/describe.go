// core/stats/describe.go
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Describe is a sample mean with its standard error.
type Describe struct {
	N    int
	Mean float64
	SEM  float64
}

// Summarize computes the mean and standard error of the mean of xs,
// ignoring NaN entries. The SEM uses the sample standard deviation
// (Bessel's correction), so it is NaN for fewer than 2 values.
func Summarize(xs []float64) Describe {
	vals := make([]float64, 0, len(xs))
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		vals = append(vals, x)
	}
	if len(vals) == 0 {
		return Describe{Mean: math.NaN(), SEM: math.NaN()}
	}
	return Describe{
		N:    len(vals),
		Mean: stat.Mean(vals, nil),
		SEM:  stat.StdDev(vals, nil) / math.Sqrt(float64(len(vals))),
	}
}
