package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/diagram"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var cases = []stress.LoadCase{{
	ID: "1",
	Forces: stress.Forces{
		PChord: 70e3, PBrace: 50e3, MipChord: 5e3, MopChord: 5e3, MopBrace: 5e3,
		SCFChordOP: 2, SCFBraceOP: 2,
	},
}}

func opts() stress.Options {
	return stress.Options{SigmaMax: 500e6, Magnification: stress.DefaultMagnification()}
}

func shs(t *testing.T, b, thick float64) section.Properties {
	t.Helper()
	p, err := section.Generate(section.SHS, b, b, thick)
	require.NoError(t, err)
	return p
}

func kReport(t *testing.T, e float64) *check.Report {
	t.Helper()
	r, err := check.Evaluate(check.Joint{
		Kind:  joint.K,
		Chord: shs(t, 0.4, 0.016),
		Brace: shs(t, 0.2, 0.01),
		K:     joint.KLayout{Eccentricity: e, ChordSpacing: 2, ChordLength: 8, Divisions: 4},
	}, cases, opts())
	require.NoError(t, err)
	return r
}

func TestSweepWorkbook(t *testing.T) {
	results := []check.SweepResult{
		{Chord: shs(t, 0.4, 0.016), Brace: shs(t, 0.2, 0.01), Report: kReport(t, 0)},
		{Chord: shs(t, 0.4, 0.016), Brace: shs(t, 0.2, 0.01), Report: kReport(t, -0.1)},
		{Chord: shs(t, 0.4, 0.016), Brace: shs(t, 0.2, 0.01), Err: errors.New("bad pair")},
	}

	f, err := SweepWorkbook(results, 24e6)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sweepSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Chord", rows[0][0])
	assert.Equal(t, "Error", rows[0][len(rows[0])-1])

	assert.Equal(t, "GAP", rows[1][2])
	assert.Equal(t, "TRUE", rows[1][14])

	assert.Equal(t, "OVERLAP", rows[2][2])
	assert.Equal(t, "geometry", rows[2][9])
	assert.Equal(t, "FALSE", rows[2][14])

	assert.Equal(t, "bad pair", rows[3][15])

	summary, err := f.GetRows(summarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 5)
	assert.Equal(t, []string{"Pairs", "3"}, summary[0])
	assert.Equal(t, []string{"Passed", "1"}, summary[1])
	assert.Equal(t, []string{"Failed", "1"}, summary[2])
	assert.Equal(t, []string{"Errors", "1"}, summary[3])
	assert.Equal(t, []string{"Sigma max (MPa)", "24"}, summary[4])
}

func TestSaveSweep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.xlsx")
	results := []check.SweepResult{{Chord: shs(t, 0.4, 0.016), Brace: shs(t, 0.2, 0.01), Report: kReport(t, 0)}}
	require.NoError(t, SaveSweep(path, results, 24e6))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{sweepSheet, summarySheet}, f.GetSheetList())
}

func TestWriteReport(t *testing.T) {
	info := ReportInfo{Project: "Roof truss", Author: "QA", Notes: "Panel point 3", Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}

	for name, r := range map[string]*check.Report{
		"pass":     kReport(t, 0),
		"geometry": kReport(t, -0.1),
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteReport(&buf, info, r))
			assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
		})
	}
}

func TestWriteReportTJoint(t *testing.T) {
	chord, err := section.Generate(section.CHS, 0.4064, 0.4064, 0.0125)
	require.NoError(t, err)
	brace, err := section.Generate(section.CHS, 0.2191, 0.2191, 0.008)
	require.NoError(t, err)

	r, err := check.Evaluate(check.Joint{
		Kind:  joint.T,
		Chord: chord,
		Brace: brace,
		T:     joint.TLayout{ChordLength: 6, Divisions: 3, Angle: 1.5707963267948966, Fixity: 0.7},
	}, []stress.LoadCase{{ID: "T1", Forces: stress.Forces{PBrace: 50e3, MipBrace: 2e3}}}, stress.Options{
		SigmaMax:      500e6,
		Magnification: stress.DefaultMagnification(),
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, ReportInfo{}, r))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestSaveReportWithImage(t *testing.T) {
	dir := t.TempDir()
	r := kReport(t, 0)

	img, err := diagram.ExportJointGeometry(r.Geometry, filepath.Join(dir, "joint.PNG"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "joint.PNG"), img)

	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, SaveReport(path, ReportInfo{Image: img}, r))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, st.Size(), int64(1000))
}

func TestSaveReportFailureRemovesFile(t *testing.T) {
	dir := t.TempDir()
	r := kReport(t, 0)

	tests := []struct {
		name  string
		image string
	}{
		{"missing image", filepath.Join(dir, "missing.png")},
		{"unsupported image", filepath.Join(dir, "joint.bmp")},
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "joint.bmp"), []byte("BM"), 0644))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "report.pdf")
			assert.Error(t, SaveReport(path, ReportInfo{Image: tt.image}, r))
			assert.NoFileExists(t, path)
		})
	}
}
