// internal/plotapp/app.go
package plotapp

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"

	"hetscan-core/engine"
	"hetscan/internal/output"
	"hetscan/internal/plotcli"
	"hetscan/internal/plotout"
	"hetscan/internal/version"
)

func Run(argv []string, stdout, stderr io.Writer) int {
	fs := plotcli.NewFlagSet("hetscan-plot")
	fs.SetOutput(io.Discard)

	opts, err := plotcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "hetscan-plot version %s\n", version.Version)
		return 0
	}

	list, err := readComparisons(opts.In)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	w := vg.Length(opts.WidthCM) * vg.Centimeter
	h := vg.Length(opts.HeightCM) * vg.Centimeter

	if err := plotout.Scatter(list, opts.Title, opts.Out, w, h); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if opts.SignificantOut != "" {
		var sig []engine.Comparison
		for _, c := range list {
			if output.IsSignificant(c) {
				sig = append(sig, c)
			}
		}
		if err := plotout.Scatter(sig, opts.Title+" (significant)", opts.SignificantOut, w, h); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

func readComparisons(path string) ([]engine.Comparison, error) {
	if path == "-" {
		return output.ReadComparisonsTSV(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return output.ReadComparisonsTSV(fh)
}
