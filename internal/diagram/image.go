package diagram

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/osama-ata/structural-analysis/internal/beam"
	"github.com/osama-ata/structural-analysis/internal/column"
)

// ExportFieldDiagrams writes deflection, moment and shear plots as three
// PNG files named <base>_deflection.png, <base>_moment.png and
// <base>_shear.png. It returns the file names it wrote.
func ExportFieldDiagrams(f *beam.Field, base string) ([]string, error) {
	curves := []struct {
		suffix string
		title  string
		yLabel string
		data   []float64
		tint   color.RGBA
	}{
		{"deflection", "Deflection Diagram", "Deflection (m)", f.Deflection, color.RGBA{R: 0, G: 0, B: 139, A: 255}},
		{"moment", "Bending Moment Diagram", "Moment (N·m)", f.Moment, color.RGBA{R: 178, G: 34, B: 34, A: 255}},
		{"shear", "Shear Diagram", "Shear (N)", f.Shear, color.RGBA{R: 34, G: 139, B: 34, A: 255}},
	}

	files := make([]string, 0, len(curves))
	for _, c := range curves {
		name := fmt.Sprintf("%s_%s.png", base, c.suffix)
		if err := exportCurve(f.X, c.data, c.title, c.yLabel, c.tint, name); err != nil {
			return files, err
		}
		files = append(files, name)
	}
	return files, nil
}

func exportCurve(x, y []float64, title, yLabel string, tint color.RGBA, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Position along beam (m)"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = tint
	p.Add(line)

	// Zero reference line
	zero := plotter.XYs{{X: x[0], Y: 0}, {X: x[len(x)-1], Y: 0}}
	zeroLine, err := plotter.NewLine(zero)
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1)
	zeroLine.LineStyle.Color = color.Gray{Y: 128}
	zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
	p.Add(zeroLine)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}

// ExportBucklingCurve plots the Euler critical load over a range of
// lengths around the given column, marking the column's design point.
func ExportBucklingCurve(c column.Column, filename string) error {
	res, err := c.EulerBuckling()
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = "Euler Buckling Curve"
	p.X.Label.Text = "Column length (m)"
	p.Y.Label.Text = "Critical load (N)"
	p.Add(plotter.NewGrid())

	const samples = 100
	minL, maxL := c.Length/2, c.Length*2
	pts := make(plotter.XYs, samples)
	for i := 0; i < samples; i++ {
		trial := c
		trial.Length = minL + (maxL-minL)*float64(i)/float64(samples-1)
		tr, err := trial.EulerBuckling()
		if err != nil {
			return err
		}
		pts[i] = plotter.XY{X: trial.Length, Y: tr.CriticalLoad}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(line)
	p.Legend.Add("P_cr", line)

	mark, err := plotter.NewScatter(plotter.XYs{{X: c.Length, Y: res.CriticalLoad}})
	if err != nil {
		return err
	}
	mark.GlyphStyle.Shape = draw.CircleGlyph{}
	mark.GlyphStyle.Radius = vg.Points(4)
	mark.GlyphStyle.Color = color.RGBA{R: 178, G: 34, B: 34, A: 255}
	p.Add(mark)
	p.Legend.Add("this column", mark)

	return p.Save(8*vg.Inch, 4*vg.Inch, filename)
}
