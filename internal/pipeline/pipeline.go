// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"sync"

	"hetscan-core/engine"
	"hetscan-core/het"
	"hetscan-core/sexmap"
	"hetscan-core/stats"
)

// Config controls the comparison pipeline.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// ForEachComparison fans the per-scaffold two-sample tests out over a
// worker pool and calls visit once per testable scaffold, in summary
// (scaffold) order. Scaffolds whose test is undefined (too few
// observations, constant data) are skipped and returned by name; any
// other error aborts. The records index is read-only shared state, the
// tests themselves are independent.
func ForEachComparison(
	ctx context.Context,
	cfg Config,
	eng *engine.Engine,
	summaries []engine.Summary,
	records []het.Record,
	visit func(engine.Comparison) error,
) (skipped []string, err error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	samples := engine.SamplesBySex(records)

	type job struct {
		idx int
		sum engine.Summary
	}
	type result struct {
		cmp engine.Comparison
		err error
	}

	jobs := make(chan job, cfg.Threads*2)
	results := make([]result, len(summaries))

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					sex := samples[j.sum.Scaffold]
					cmp, cerr := eng.Compare(j.sum, sex[sexmap.Male], sex[sexmap.Female])
					results[j.idx] = result{cmp: cmp, err: cerr}
				}
			}
		}()
	}

feed:
	for i, s := range summaries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, sum: s}:
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	for i, r := range results {
		switch {
		case r.err == nil:
			if err := visit(r.cmp); err != nil {
				return skipped, err
			}
		case errors.Is(r.err, stats.ErrInsufficientSample),
			errors.Is(r.err, stats.ErrConstantSamples):
			skipped = append(skipped, summaries[i].Scaffold)
		default:
			return skipped, r.err
		}
	}
	return skipped, nil
}
