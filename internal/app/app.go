// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hetscan-core/engine"
	"hetscan-core/het"
	"hetscan-core/hom"
	"hetscan-core/sexmap"
	"hetscan/internal/cli"
	"hetscan/internal/config"
	"hetscan/internal/pipeline"
	"hetscan/internal/sqlout"
	"hetscan/internal/version"
	"hetscan/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("hetscan")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "hetscan version %s\n", version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	mergeFlags(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	heterogametic, _ := cfg.Heterogametic() // validated above

	log := newLogger(stderr, opts.Quiet)
	defer func() { _ = log.Sync() }()

	homRecs, err := hom.LoadTSV(opts.HomFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	sexes, err := sexmap.LoadTSV(opts.SexFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	enriched, err := het.Enrich(homRecs, sexes, cfg.MinLoci)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	summaries := engine.Summarize(enriched)
	if len(summaries) == 0 {
		log.Warnw("no scaffold has both sexes represented; nothing to test",
			"records", len(enriched))
	}

	eng := engine.New(engine.Config{
		Alpha:            cfg.Alpha,
		LinkageThreshold: cfg.LinkageThreshold,
		Heterogametic:    heterogametic,
	})

	thr := cfg.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}

	table := writers.Comparisons
	if opts.CandidatesOnly {
		table = writers.Candidates
	}
	inCh, writeErr := writers.Start(table, opts.Output, outw, opts.Header, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var comparisons []engine.Comparison
	skipped, perr := pipeline.ForEachComparison(ctx, pipeline.Config{Threads: thr}, eng, summaries, enriched,
		func(c engine.Comparison) error {
			comparisons = append(comparisons, c)
			if opts.CandidatesOnly && !eng.Candidate(c) {
				return nil
			}
			inCh <- c
			return nil
		})
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, perr)
		return 3
	}

	if len(skipped) > 0 {
		log.Warnw("scaffolds excluded: two-sample test undefined",
			"count", len(skipped), "scaffolds", skipped)
	}

	var candidates []engine.Comparison
	for _, c := range comparisons {
		if eng.Candidate(c) {
			candidates = append(candidates, c)
		}
	}

	if opts.CandidatesOut != "" {
		if err := writeCandidatesFile(opts, candidates); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if cfg.DBPath != "" {
		if err := storeDB(cfg.DBPath, eng, comparisons); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// mergeFlags applies explicitly set flags over the loaded config.
func mergeFlags(cfg *config.Config, opts cli.Options) {
	if opts.WasSet("heterogametic-sex") {
		cfg.HeterogameticSex = opts.Heterogametic
	}
	if opts.WasSet("linkage-threshold") {
		cfg.LinkageThreshold = opts.LinkageThreshold
	}
	if opts.WasSet("alpha") {
		cfg.Alpha = opts.Alpha
	}
	if opts.WasSet("min-loci") {
		cfg.MinLoci = opts.MinLoci
	}
	if opts.WasSet("threads") {
		cfg.Threads = opts.Threads
	}
	if opts.WasSet("db") {
		cfg.DBPath = opts.DBPath
	}
}

func newLogger(stderr io.Writer, quiet bool) *zap.SugaredLogger {
	level := zapcore.WarnLevel
	if quiet {
		level = zapcore.ErrorLevel
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = "" // batch tool, timestamps are noise on a terminal
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(stderr), level)
	return zap.New(core).Sugar()
}

func writeCandidatesFile(opts cli.Options, candidates []engine.Comparison) error {
	fh, err := os.Create(opts.CandidatesOut)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := writers.Write(writers.Candidates, opts.Output, w, candidates, opts.Header); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

func storeDB(path string, eng *engine.Engine, comparisons []engine.Comparison) error {
	db, err := sqlout.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return sqlout.StoreRun(db, eng.Config(), comparisons, eng.Candidate)
}
