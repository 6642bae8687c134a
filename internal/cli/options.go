// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"hetscan/internal/output"
	"hetscan/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Inputs
	HomFile    string
	SexFile    string
	ConfigFile string

	// Test & filter parameters (flags override config file)
	Heterogametic    string
	LinkageThreshold float64
	Alpha            float64
	MinLoci          int

	// Performance
	Threads int

	// Output
	Output         string
	CandidatesOut  string
	CandidatesOnly bool
	DBPath         string
	Header         bool // true unless --no-header
	Quiet          bool

	Version bool

	set map[string]struct{}
}

// WasSet reports whether a flag was given explicitly on the command
// line, which lets it take precedence over the config file.
func (o *Options) WasSet(name string) bool {
	_, ok := o.set[name]
	return ok
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: flag sex-linked scaffolds from per-scaffold heterozygosity

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Inputs
	fs.StringVar(&opt.HomFile, "hom", "", "per-scaffold homozygosity TSV (Scaffold Indv O(HOM) E(hom) N F) [*]")
	fs.StringVar(&opt.SexFile, "sex", "", "individual sex TSV (Indv Sex) [*]")
	fs.StringVar(&opt.ConfigFile, "config", "", "YAML config file []")

	// Test & filter parameters
	fs.StringVar(&opt.Heterogametic, "heterogametic-sex", "female", "heterogametic sex: male (XY) | female (ZW) [female]")
	fs.Float64Var(&opt.LinkageThreshold, "linkage-threshold", 0.05, "max heterogametic-sex heterozygosity for a candidate [0.05]")
	fs.Float64Var(&opt.Alpha, "alpha", 0.001, "significance level for the p-value cut [0.001]")
	fs.IntVar(&opt.MinLoci, "min-loci", 100, "exclude records with N at or below this locus count [100]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads for per-scaffold tests (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: text | json [text]")
	fs.StringVar(&opt.CandidatesOut, "candidates-out", "", "also write the candidate table to this file []")
	fs.BoolVar(&opt.CandidatesOnly, "candidates-only", false, "emit the candidate table on stdout instead of the full comparison [false]")
	fs.StringVar(&opt.DBPath, "db", "", "also store results in a SQLite database []")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in text/TSV [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	opt.set = make(map[string]struct{})
	fs.Visit(func(f *flag.Flag) { opt.set[f.Name] = struct{}{} })
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader

	// Validation
	if opt.HomFile == "" {
		return opt, errors.New("--hom is required")
	}
	if opt.SexFile == "" {
		return opt, errors.New("--sex is required")
	}
	if opt.Output != output.FormatText && opt.Output != output.FormatJSON {
		return opt, fmt.Errorf("unsupported --output %q", opt.Output)
	}
	if opt.Alpha <= 0 || opt.Alpha >= 1 {
		return opt, errors.New("--alpha must be in (0,1)")
	}
	if opt.LinkageThreshold <= 0 {
		return opt, errors.New("--linkage-threshold must be > 0")
	}
	if opt.MinLoci < 0 {
		return opt, errors.New("--min-loci must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	return opt, nil
}
