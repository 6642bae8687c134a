// core/het/het.go
package het

import (
	"errors"
	"fmt"

	"hetscan-core/hom"
	"hetscan-core/sexmap"
)

// DefaultMinLoci excludes scaffolds genotyped at too few loci; ratios
// over sparse counts are unstable.
const DefaultMinLoci = 100

var (
	// ErrInvalidRecord marks a record whose locus count cannot divide.
	ErrInvalidRecord = errors.New("invalid record: non-positive locus count")
	// ErrNoMatchingIndividual means the join produced zero rows, which
	// is an aborting condition rather than an empty success.
	ErrNoMatchingIndividual = errors.New("no homozygosity record matched a sex annotation")
)

// Record is a homozygosity row joined with its individual's sex plus
// the derived heterozygosity fields.
type Record struct {
	hom.Record
	Sex        sexmap.Sex
	ObsHet     int     // Loci - ObsHom
	ExpHet     float64 // Loci - ExpHom
	PropObsHet float64 // ObsHet / Loci
	PropExpHet float64 // ExpHet / Loci
}

// Enrich filters records to Loci > minLoci, inner-joins them with sexes
// on the individual identifier, and derives heterozygosity ratios.
// A row without a sex annotation is dropped, not an error. A join that
// produces no rows at all returns ErrNoMatchingIndividual.
func Enrich(records []hom.Record, sexes sexmap.Table, minLoci int) ([]Record, error) {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.Loci <= minLoci {
			continue
		}
		sex, ok := sexes[r.Individual]
		if !ok {
			continue
		}
		e, err := derive(r, sex)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil, ErrNoMatchingIndividual
	}
	return out, nil
}

// derive does not assume the minLoci filter ran first: a non-positive
// locus count is rejected rather than divided by.
func derive(r hom.Record, sex sexmap.Sex) (Record, error) {
	if r.Loci <= 0 {
		return Record{}, fmt.Errorf("%w: %s/%s N=%d", ErrInvalidRecord, r.Scaffold, r.Individual, r.Loci)
	}
	n := float64(r.Loci)
	obsHet := r.Loci - r.ObsHom
	expHet := n - r.ExpHom
	return Record{
		Record:     r,
		Sex:        sex,
		ObsHet:     obsHet,
		ExpHet:     expHet,
		PropObsHet: float64(obsHet) / n,
		PropExpHet: expHet / n,
	}, nil
}
