// internal/plotout/scatter.go
package plotout

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"hetscan-core/engine"
	"hetscan/internal/output"
)

var (
	colSignificant = color.RGBA{R: 202, G: 0, B: 32, A: 255}
	colRest        = color.RGBA{R: 64, G: 64, B: 64, A: 255}
)

// points adapts comparison rows to the plotter interfaces, with the
// per-sex SEM as symmetric error bars (male on X, female on Y).
type points []engine.Comparison

func (p points) Len() int { return len(p) }

func (p points) XY(i int) (float64, float64) { return p[i].MeanMale, p[i].MeanFemale }

func (p points) XError(i int) (float64, float64) { return p[i].SEMMale, p[i].SEMMale }

func (p points) YError(i int) (float64, float64) { return p[i].SEMFemale, p[i].SEMFemale }

// Scatter renders male vs female mean heterozygosity with SEM error
// bars, significance color-coded, and saves to path (format from the
// file extension: .png, .svg, .pdf).
func Scatter(list []engine.Comparison, title, path string, w, h vg.Length) error {
	var sig, rest points
	for _, c := range list {
		if output.IsSignificant(c) {
			sig = append(sig, c)
		} else {
			rest = append(rest, c)
		}
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "PO.het Male"
	p.Y.Label.Text = "PO.het Female"
	p.Add(plotter.NewGrid())

	if err := addLayer(p, rest, "not significant", colRest); err != nil {
		return err
	}
	if err := addLayer(p, sig, "significant", colSignificant); err != nil {
		return err
	}
	return p.Save(w, h, path)
}

func addLayer(p *plot.Plot, pts points, name string, col color.RGBA) error {
	if len(pts) == 0 {
		return nil
	}
	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: col, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}}

	xerr, err := plotter.NewXErrorBars(pts)
	if err != nil {
		return err
	}
	xerr.LineStyle.Color = col
	yerr, err := plotter.NewYErrorBars(pts)
	if err != nil {
		return err
	}
	yerr.LineStyle.Color = col

	p.Add(sc, xerr, yerr)
	p.Legend.Add(name, sc)
	return nil
}
