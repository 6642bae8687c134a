// core/engine/groupby.go
package engine

import "hetscan-core/het"

// GroupBy partitions a value column of the enriched table by an
// arbitrary key. Grouping is explicit: callers pass the key and value
// extractors, there is no implicit grouping context.
func GroupBy[K comparable](records []het.Record, key func(het.Record) K, val func(het.Record) float64) map[K][]float64 {
	groups := make(map[K][]float64)
	for _, r := range records {
		k := key(r)
		groups[k] = append(groups[k], val(r))
	}
	return groups
}

// Aggregate reduces each group with a pure reducer.
func Aggregate[K comparable, R any](groups map[K][]float64, reduce func([]float64) R) map[K]R {
	out := make(map[K]R, len(groups))
	for k, vals := range groups {
		out[k] = reduce(vals)
	}
	return out
}
