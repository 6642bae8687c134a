package stats

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	d := Summarize([]float64{1, 2, 3, 4})
	if d.N != 4 || d.Mean != 2.5 {
		t.Fatalf("bad mean: %+v", d)
	}
	// sample variance 5/3, SEM = sqrt(5/3)/2
	want := math.Sqrt(5.0/3.0) / 2
	if math.Abs(d.SEM-want) > 1e-12 {
		t.Fatalf("SEM = %v, want %v", d.SEM, want)
	}
}

func TestSummarize_IgnoresNaN(t *testing.T) {
	d := Summarize([]float64{1, math.NaN(), 3})
	if d.N != 2 || d.Mean != 2 {
		t.Fatalf("NaN not ignored: %+v", d)
	}
}

func TestSummarize_SingleValue(t *testing.T) {
	d := Summarize([]float64{0.3})
	if d.N != 1 || d.Mean != 0.3 || !math.IsNaN(d.SEM) {
		t.Fatalf("single value: %+v", d)
	}
}

func TestSummarize_Empty(t *testing.T) {
	d := Summarize(nil)
	if d.N != 0 || !math.IsNaN(d.Mean) || !math.IsNaN(d.SEM) {
		t.Fatalf("empty: %+v", d)
	}
}

func TestSummarize_OrderIndependent(t *testing.T) {
	a := Summarize([]float64{0.1, 0.2, 0.3, 0.4})
	b := Summarize([]float64{0.4, 0.1, 0.3, 0.2})
	if a.Mean != b.Mean || a.SEM != b.SEM {
		t.Fatalf("order dependence: %+v vs %+v", a, b)
	}
}
