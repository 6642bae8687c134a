// core/hom/record.go
package hom

// Record is one row of the per-scaffold homozygosity table: one
// individual's homozygosity statistics restricted to one scaffold.
// Rows are produced externally (per-scaffold --het runs concatenated
// with a prepended scaffold column) and never mutated after loading.
type Record struct {
	Scaffold   string
	Individual string
	ObsHom     int     // O(HOM): observed homozygous loci
	ExpHom     float64 // E(hom): expected homozygous loci
	Loci       int     // N: loci genotyped on this scaffold
	F          float64 // inbreeding coefficient
}
