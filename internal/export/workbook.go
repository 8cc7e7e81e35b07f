// Package export writes sweep workbooks and PDF calculation reports.
package export

import (
	"fmt"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/xuri/excelize/v2"
)

const (
	sweepSheet   = "Sweep"
	summarySheet = "Summary"
)

var sweepHeader = []any{
	"Chord", "Brace", "Classification", "Theta (deg)", "beta", "2gamma", "tau", "Ov", "g'",
	"Failed gate", "Load case", "Sigma chord (MPa)", "Sigma brace (MPa)", "Utilisation", "Pass", "Error",
}

// SweepWorkbook builds a workbook with one row per chord/brace pair
func SweepWorkbook(results []check.SweepResult, sigmaMax float64) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sweepSheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetRow(sweepSheet, "A1", &sweepHeader); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(sweepSheet, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	passed, failed, errored := 0, 0, 0
	for i, r := range results {
		row := sweepRow(r)
		switch {
		case r.Err != nil:
			errored++
		case r.Report.Pass:
			passed++
		default:
			failed++
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sweepSheet, cell, &row); err != nil {
			f.Close()
			return nil, err
		}
	}
	if err := f.SetColWidth(sweepSheet, "A", "B", 20); err != nil {
		f.Close()
		return nil, err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		f.Close()
		return nil, err
	}
	summary := [][]any{
		{"Pairs", len(results)},
		{"Passed", passed},
		{"Failed", failed},
		{"Errors", errored},
		{"Sigma max (MPa)", sigmaMax / 1e6},
	}
	for i, row := range summary {
		if err := f.SetSheetRow(summarySheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

func sweepRow(r check.SweepResult) []any {
	row := []any{r.Chord.Label(), r.Brace.Label()}
	if r.Err != nil {
		return append(row, "", "", "", "", "", "", "", "", "", "", "", "", false, r.Err.Error())
	}

	g := r.Report.Geometry
	row = append(row, g.Classification.String(), g.ThetaDegrees(), g.Beta, g.TwoGamma, g.Tau, g.Ov, g.GPrime,
		string(r.Report.FailedGate))

	if gc := r.Report.GoverningCase(); gc != nil {
		row = append(row, gc.Case.ID, gc.Result.Chord/1e6, gc.Result.Brace/1e6, gc.Result.Utilisation())
	} else {
		row = append(row, "", "", "", "")
	}
	return append(row, r.Report.Pass, "")
}

// SaveSweep writes the sweep workbook to path
func SaveSweep(path string, results []check.SweepResult, sigmaMax float64) error {
	f, err := SweepWorkbook(results, sigmaMax)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
