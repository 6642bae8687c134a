// core/engine/summarize.go
package engine

import (
	"math"
	"sort"

	"hetscan-core/het"
	"hetscan-core/sexmap"
	"hetscan-core/stats"
)

type groupKey struct {
	Scaffold string
	Sex      sexmap.Sex
}

// Summarize aggregates PropObsHet per (scaffold, sex) and reshapes the
// result wide, one row per scaffold, sorted by scaffold. This is the
// narrowing step: scaffolds missing either sex, or with an undefined
// SEM (a single observation), are dropped and never reach testing.
func Summarize(records []het.Record) []Summary {
	groups := GroupBy(records,
		func(r het.Record) groupKey { return groupKey{r.Scaffold, r.Sex} },
		func(r het.Record) float64 { return r.PropObsHet },
	)
	agg := Aggregate(groups, stats.Summarize)

	byScaffold := make(map[string]*Summary)
	for k, d := range agg {
		s := byScaffold[k.Scaffold]
		if s == nil {
			s = &Summary{Scaffold: k.Scaffold}
			byScaffold[k.Scaffold] = s
		}
		switch k.Sex {
		case sexmap.Male:
			s.NMale, s.MeanMale, s.SEMMale = d.N, d.Mean, d.SEM
		case sexmap.Female:
			s.NFemale, s.MeanFemale, s.SEMFemale = d.N, d.Mean, d.SEM
		}
	}

	out := make([]Summary, 0, len(byScaffold))
	for _, s := range byScaffold {
		if s.NMale == 0 || s.NFemale == 0 {
			continue
		}
		if math.IsNaN(s.SEMMale) || math.IsNaN(s.SEMFemale) {
			continue
		}
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Scaffold < out[j].Scaffold })
	return out
}

// SamplesBySex indexes PropObsHet values per scaffold and sex, the
// read-only input shared by the per-scaffold tests.
func SamplesBySex(records []het.Record) map[string]map[sexmap.Sex][]float64 {
	idx := make(map[string]map[sexmap.Sex][]float64)
	for _, r := range records {
		m := idx[r.Scaffold]
		if m == nil {
			m = make(map[sexmap.Sex][]float64, 2)
			idx[r.Scaffold] = m
		}
		m[r.Sex] = append(m[r.Sex], r.PropObsHet)
	}
	return idx
}
