// internal/plotcli/options.go
package plotcli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"hetscan/internal/version"
)

// Options holds all hetscan-plot flags.
type Options struct {
	In             string  // comparison TSV ("-" = stdin)
	Out            string  // scatter of every tested scaffold
	SignificantOut string  // optional second plot, significant rows only
	Title          string
	WidthCM        float64
	HeightCM       float64

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: scatter plots from a hetscan comparison table

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

	fs.StringVar(&opt.In, "in", "-", "comparison TSV as written by hetscan ('-' = stdin) [-]")
	fs.StringVar(&opt.Out, "out", "hetscan_scatter.png", "output image (.png | .svg | .pdf) [hetscan_scatter.png]")
	fs.StringVar(&opt.SignificantOut, "significant-out", "", "also plot only the significant scaffolds to this image []")
	fs.StringVar(&opt.Title, "title", "Per-scaffold heterozygosity by sex", "plot title")
	fs.Float64Var(&opt.WidthCM, "width", 16, "plot width in cm [16]")
	fs.Float64Var(&opt.HeightCM, "height", 12, "plot height in cm [12]")

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
	if opt.Version {
		return opt, nil
	}

	if opt.Out == "" {
		return opt, errors.New("--out is required")
	}
	for _, p := range []string{opt.Out, opt.SignificantOut} {
		if p == "" {
			continue
		}
		if !strings.HasSuffix(p, ".png") && !strings.HasSuffix(p, ".svg") && !strings.HasSuffix(p, ".pdf") {
			return opt, fmt.Errorf("unsupported image extension in %q (want .png, .svg, or .pdf)", p)
		}
	}
	if opt.WidthCM <= 0 || opt.HeightCM <= 0 {
		return opt, errors.New("--width and --height must be > 0")
	}
	return opt, nil
}
