// core/stats/welch.go
package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// WelchMethod names the two-sample test reported in comparison output.
const WelchMethod = "Welch two-sample t-test"

var (
	// ErrInsufficientSample: the test is undefined below 2 observations
	// per group.
	ErrInsufficientSample = errors.New("insufficient sample size: need at least 2 observations per group")
	// ErrConstantSamples: both groups have zero variance, so the t
	// statistic is undefined (matching the refusal of standard t-test
	// routines on essentially constant data).
	ErrConstantSamples = errors.New("degenerate samples: zero variance in both groups")
)

// TTest is the result of a two-sample comparison.
type TTest struct {
	T      float64
	DF     float64
	P      float64 // two-sided
	Method string
}

// WelchTTest compares the means of two independent samples without
// assuming equal variances. The two-sided p-value comes from the
// Student's t distribution with Welch–Satterthwaite degrees of freedom.
func WelchTTest(a, b []float64) (TTest, error) {
	if len(a) < 2 || len(b) < 2 {
		return TTest{}, fmt.Errorf("%w (n=%d, m=%d)", ErrInsufficientSample, len(a), len(b))
	}
	na, nb := float64(len(a)), float64(len(b))
	sa := stat.Variance(a, nil) / na
	sb := stat.Variance(b, nil) / nb
	se2 := sa + sb
	if se2 == 0 {
		return TTest{}, ErrConstantSamples
	}
	t := (stat.Mean(a, nil) - stat.Mean(b, nil)) / math.Sqrt(se2)
	df := se2 * se2 / (sa*sa/(na-1) + sb*sb/(nb-1))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return TTest{
		T:      t,
		DF:     df,
		P:      2 * dist.CDF(-math.Abs(t)),
		Method: WelchMethod,
	}, nil
}
