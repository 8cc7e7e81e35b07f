package diagram

import (
	"context"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, e float64) *check.Report {
	t.Helper()
	chord, err := section.Generate(section.SHS, 0.4, 0.4, 0.016)
	require.NoError(t, err)
	brace, err := section.Generate(section.SHS, 0.2, 0.2, 0.01)
	require.NoError(t, err)

	j := check.Joint{
		Kind:  joint.K,
		Chord: chord,
		Brace: brace,
		K:     joint.KLayout{Eccentricity: e, ChordSpacing: 2, ChordLength: 8, Divisions: 4},
	}
	cases := []stress.LoadCase{{ID: "1", Forces: stress.Forces{PChord: 70e3, PBrace: 50e3, MipChord: 5e3, SCFChordOP: 2, SCFBraceOP: 2}}}
	r, err := check.Evaluate(j, cases, stress.Options{SigmaMax: 200e6, Strategy: stress.Components, Magnification: stress.DefaultMagnification()})
	require.NoError(t, err)
	return r
}

func TestDrawJointSketch(t *testing.T) {
	gap := DrawJointSketch(evaluate(t, 0).Geometry)
	assert.Contains(t, gap, "K-JOINT ELEVATION")
	assert.Contains(t, gap, "g' = 7.32")

	overlap := DrawJointSketch(evaluate(t, -0.15).Geometry)
	assert.Contains(t, overlap, "Ov = 61.9%")
	assert.Contains(t, overlap, "e = -150 mm")

	tj := DrawJointSketch(&joint.Geometry{Kind: joint.T, Theta: math.Pi / 2, Alpha: 20, Fixity: 0.7})
	assert.Contains(t, tj, "θ = 90.0°")
	assert.Contains(t, tj, "α = 20.00")
}

func TestDrawLimitBars(t *testing.T) {
	r := evaluate(t, 0)
	out := DrawLimitBars(r.Geometry, r.Limits)
	assert.Contains(t, out, "PASS - Dimensions")
	assert.Equal(t, 3, strings.Count(out, "●"))

	g := *r.Geometry
	g.Beta = 1.5
	res := joint.CheckLimits(&g)
	out = DrawLimitBars(&g, res)
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "FAIL")
}

func TestDrawStressBars(t *testing.T) {
	res := evaluate(t, 0).GoverningCase().Result
	out := DrawStressBars(res)
	for _, c := range res.Components {
		assert.Contains(t, out, c.Name)
	}
	assert.Contains(t, out, "σ_max")
	assert.Contains(t, out, "200.00 MPa")
}

func TestDrawSummaryBoxAlignsUnicode(t *testing.T) {
	box := DrawSummaryBox("JOINT", []string{"β = 0.500", "2γ = 25.0"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 6)
	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
}

func sweep(t *testing.T) []check.SweepResult {
	t.Helper()
	var chords, braces []section.Properties
	for _, d := range []float64{0.3, 0.35, 0.4} {
		p, err := section.Generate(section.SHS, d, d, 0.016)
		require.NoError(t, err)
		chords = append(chords, p)
	}
	for _, d := range []float64{0.15, 0.2} {
		p, err := section.Generate(section.SHS, d, d, 0.01)
		require.NoError(t, err)
		braces = append(braces, p)
	}
	cases := []stress.LoadCase{{ID: "1", Forces: stress.Forces{PChord: 70e3, PBrace: 50e3}}}
	results, err := check.Sweep(context.Background(), chords, braces, cases, check.SweepOptions{
		Kind:   joint.K,
		K:      joint.KLayout{ChordSpacing: 2, ChordLength: 8, Divisions: 4},
		Stress: stress.Options{SigmaMax: 100e6, Magnification: stress.DefaultMagnification()},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return results
}

func TestDrawSweepChart(t *testing.T) {
	out := DrawSweepChart(sweep(t), 100e6)
	assert.Contains(t, out, "σ_chord (blue)")

	assert.Contains(t, DrawSweepChart(nil, 100e6), "No pair passed")
}

func TestExportImages(t *testing.T) {
	dir := t.TempDir()
	r := evaluate(t, 0)

	geom := filepath.Join(dir, "plots", "geometry.png")
	path, err := ExportJointGeometry(r.Geometry, geom)
	require.NoError(t, err)
	assert.Equal(t, geom, path)
	assert.FileExists(t, geom)

	ov := filepath.Join(dir, "overlap.svg")
	path, err = ExportJointGeometry(evaluate(t, -0.15).Geometry, ov)
	require.NoError(t, err)
	assert.FileExists(t, path)

	bars := filepath.Join(dir, "stress.png")
	path, err = ExportStressChart(r.GoverningCase().Result, bars)
	require.NoError(t, err)
	assert.FileExists(t, path)

	limits := filepath.Join(dir, "limits")
	path, err = ExportLimitsChart(r.Geometry, r.Limits, limits)
	require.NoError(t, err)
	assert.Equal(t, limits+".png", path)
	assert.FileExists(t, path)

	scatter := filepath.Join(dir, "sweep.pdf")
	path, err = ExportSweepScatter(sweep(t), 100e6, scatter)
	require.NoError(t, err)
	assert.Equal(t, scatter, path)
	assert.FileExists(t, path)
}

func TestExportFileNames(t *testing.T) {
	r := evaluate(t, 0)

	tests := []struct {
		name string
		file string
		want string
	}{
		{"lowercase png", "joint.png", "joint.png"},
		{"uppercase png", "joint.PNG", "joint.PNG"},
		{"mixed case svg", "joint.Svg", "joint.Svg"},
		{"uppercase jpeg", "joint.JPEG", "joint.JPEG"},
		{"no extension", "joint", "joint.png"},
		{"unsupported extension", "joint.bmp", "joint.bmp.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path, err := ExportJointGeometry(r.Geometry, filepath.Join(dir, tt.file))
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.want), path)
			assert.FileExists(t, path)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1)
		})
	}
}
