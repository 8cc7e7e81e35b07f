package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	chordColor = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	braceColor = color.RGBA{R: 255, G: 165, B: 0, A: 150}
	limitColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	passColor  = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	edgeColor  = color.RGBA{R: 0, G: 0, B: 139, A: 255}
)

// ExportJointGeometry exports an elevation of the chord and braces in mm.
// The chord centreline lies on y = 0 and the braces sit on its top face.
func ExportJointGeometry(g *joint.Geometry, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s-Joint Geometry (θ = %.1f°)", g.Kind, g.ThetaDegrees())
	p.X.Label.Text = "x (mm)"
	p.Y.Label.Text = "y (mm)"

	d0 := g.Chord.Depth * 1000
	d1 := g.Brace.Depth * 1000
	height := 1.5 * d0
	span := 2.5 * d0

	chord, err := plotter.NewPolygon(plotter.XYs{
		{X: -span, Y: -d0 / 2},
		{X: span, Y: -d0 / 2},
		{X: span, Y: d0 / 2},
		{X: -span, Y: d0 / 2},
	})
	if err != nil {
		return "", err
	}
	chord.Color = chordColor
	chord.LineStyle.Color = edgeColor
	p.Add(chord)

	// brace centrelines meet at (0, -e)
	origin := plotter.XY{X: 0, Y: -g.Eccentricity * 1000}
	braces := []float64{g.Theta}
	if g.Kind == joint.K {
		braces = append(braces, math.Pi-g.Theta)
	}
	for _, angle := range braces {
		outline := braceOutline(origin, angle, d1, d0/2, d0/2+height)
		brace, err := plotter.NewPolygon(outline)
		if err != nil {
			return "", err
		}
		brace.Color = braceColor
		brace.LineStyle.Color = edgeColor
		p.Add(brace)

		axis, err := plotter.NewLine(plotter.XYs{origin, along(origin, angle, d0/2+height)})
		if err != nil {
			return "", err
		}
		axis.LineStyle.Color = limitColor
		axis.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(axis)
	}

	centre, err := plotter.NewLine(plotter.XYs{{X: -span, Y: 0}, {X: span, Y: 0}})
	if err != nil {
		return "", err
	}
	centre.LineStyle.Color = limitColor
	centre.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(centre)

	note := fmt.Sprintf("%s  e=%.0fmm", g.Classification, g.Eccentricity*1000)
	if g.Kind == joint.K && g.Classification == joint.Gap {
		note += fmt.Sprintf("  g'=%.2f", g.GPrime)
	} else if g.Kind == joint.K {
		note += fmt.Sprintf("  Ov=%.0f%%", g.Ov*100)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: -span, Y: -d0/2 - 0.3*d0}},
		Labels: []string{note},
	})
	if err != nil {
		return "", err
	}
	p.Add(labels)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// along returns the point at height y on the line through o at angle a
func along(o plotter.XY, a, y float64) plotter.XY {
	t := (y - o.Y) / math.Sin(a)
	return plotter.XY{X: o.X + t*math.Cos(a), Y: y}
}

// braceOutline returns the brace walls between the chord face y0 and y1
func braceOutline(o plotter.XY, a, depth, y0, y1 float64) plotter.XYs {
	nx, ny := -math.Sin(a)*depth/2, math.Cos(a)*depth/2
	left := plotter.XY{X: o.X + nx, Y: o.Y + ny}
	right := plotter.XY{X: o.X - nx, Y: o.Y - ny}
	return plotter.XYs{along(left, a, y0), along(right, a, y0), along(right, a, y1), along(left, a, y1)}
}

// ExportStressChart exports the stress components as stacked chord and
// brace bars with the σ_max line
func ExportStressChart(res stress.Result, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Hot-Spot Stresses (%s)", res.Strategy)
	p.Y.Label.Text = "Stress (MPa)"
	p.Legend.Top = true

	w := vg.Points(40)
	var below *plotter.BarChart
	for i, c := range res.Components {
		values := plotter.Values{0, 0}
		if c.Member == stress.Chord {
			values[0] = c.Value / 1e6
		} else {
			values[1] = c.Value / 1e6
		}
		bars, err := plotter.NewBarChart(values, w)
		if err != nil {
			return "", err
		}
		bars.Color = plotColor(i)
		bars.LineStyle.Width = 0
		if below != nil {
			bars.StackOn(below)
		}
		below = bars
		p.Add(bars)
		p.Legend.Add(c.Name, bars)
	}

	sigmaMax := res.SigmaMax / 1e6
	limit := plotter.NewFunction(func(float64) float64 { return sigmaMax })
	limit.Color = limitColor
	limit.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	limit.Width = vg.Points(1.5)
	p.Add(limit)
	p.Legend.Add(fmt.Sprintf("σ_max = %.1f MPa", sigmaMax), limit)

	p.NominalX("Chord", "Brace")
	p.X.Min, p.X.Max = -0.5, 1.5
	p.Y.Min = 0
	p.Y.Max = math.Max(sigmaMax, math.Max(res.Chord, res.Brace)/1e6) * 1.15

	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// ExportLimitsChart exports each dimensionless parameter normalised to its
// allowable range, so 0 and 1 are the range limits
func ExportLimitsChart(g *joint.Geometry, res joint.LimitsResult, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Dimensional Parameters"
	p.X.Label.Text = "Position within allowable range"

	names := []string{"β", "2γ", "τ"}
	values := []float64{g.Beta, g.TwoGamma, g.Tau}
	ranges := []struct{ min, max float64 }{
		{res.Limits.Beta.Min, res.Limits.Beta.Max},
		{res.Limits.TwoGamma.Min, res.Limits.TwoGamma.Max},
		{res.Limits.Tau.Min, res.Limits.Tau.Max},
	}
	if res.Limits.Alpha != nil {
		names = append(names, "α")
		values = append(values, g.Alpha)
		ranges = append(ranges, struct{ min, max float64 }{res.Limits.Alpha.Min, res.Limits.Alpha.Max})
	}

	var inside, outside plotter.XYs
	for i, v := range values {
		y := float64(i)
		band, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: 1, Y: y}})
		if err != nil {
			return "", err
		}
		band.LineStyle.Width = vg.Points(4)
		band.LineStyle.Color = chordColor
		p.Add(band)

		pt := plotter.XY{X: (v - ranges[i].min) / (ranges[i].max - ranges[i].min), Y: y}
		if pt.X >= 0 && pt.X <= 1 {
			inside = append(inside, pt)
		} else {
			outside = append(outside, pt)
		}

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: 1.05, Y: y}},
			Labels: []string{fmt.Sprintf("%s = %.3f [%g, %g]", names[i], v, ranges[i].min, ranges[i].max)},
		})
		if err != nil {
			return "", err
		}
		p.Add(lbl)
	}
	for _, set := range []struct {
		pts plotter.XYs
		c   color.Color
	}{{inside, passColor}, {outside, limitColor}} {
		if len(set.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(set.pts)
		if err != nil {
			return "", err
		}
		sc.GlyphStyle.Color = set.c
		sc.GlyphStyle.Radius = vg.Points(5)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
	}

	p.NominalY(names...)
	p.X.Max = math.Max(p.X.Max, 2)

	return save(p, 8*vg.Inch, 4*vg.Inch, filename)
}

// ExportSweepScatter exports σ_chord against σ_brace for every evaluated
// pair, passing pairs in green
func ExportSweepScatter(results []check.SweepResult, sigmaMax float64, filename string) (string, error) {
	p := plot.New()
	p.Title.Text = "Catalog Sweep"
	p.X.Label.Text = "σ_chord (MPa)"
	p.Y.Label.Text = "σ_brace (MPa)"

	var pass, fail plotter.XYs
	for _, r := range results {
		if r.Report == nil || r.Report.GoverningCase() == nil {
			continue
		}
		res := r.Report.GoverningCase().Result
		pt := plotter.XY{X: res.Chord / 1e6, Y: res.Brace / 1e6}
		if r.Report.Pass {
			pass = append(pass, pt)
		} else {
			fail = append(fail, pt)
		}
	}

	for _, set := range []struct {
		name string
		pts  plotter.XYs
		c    color.Color
	}{{"pass", pass, passColor}, {"fail", fail, limitColor}} {
		if len(set.pts) == 0 {
			continue
		}
		sc, err := plotter.NewScatter(set.pts)
		if err != nil {
			return "", err
		}
		sc.GlyphStyle.Color = set.c
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(set.name, sc)
	}

	s := sigmaMax / 1e6
	vertical, err := plotter.NewLine(plotter.XYs{{X: s, Y: 0}, {X: s, Y: s}})
	if err != nil {
		return "", err
	}
	horizontal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: s}, {X: s, Y: s}})
	if err != nil {
		return "", err
	}
	for _, l := range []*plotter.Line{vertical, horizontal} {
		l.LineStyle.Color = limitColor
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(l)
	}

	return save(p, 7*vg.Inch, 7*vg.Inch, filename)
}

func plotColor(i int) color.Color {
	palette := []color.RGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
	}
	return palette[i%len(palette)]
}

// save writes the plot, picking the format from the extension and
// appending ".png" when it has none or an unsupported one. It returns
// the path actually written.
func save(p *plot.Plot, width, height vg.Length, filename string) (string, error) {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}
