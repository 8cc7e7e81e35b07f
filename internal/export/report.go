package export

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
	"github.com/alexiusacademia/gohsjoint/internal/version"
	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"
)

// ReportInfo is the title block of a calculation report
type ReportInfo struct {
	Project   string
	Author    string
	Reference string // calculation reference, generated when empty
	Title     string
	Notes     string
	Date      time.Time
	Image     string // optional PNG of the joint geometry
}

// WriteReport renders a PDF calculation report for one evaluation
func WriteReport(w io.Writer, info ReportInfo, r *check.Report) error {
	if info.Title == "" {
		info.Title = "Hollow Section Joint Fatigue Check"
	}
	if info.Date.IsZero() {
		info.Date = time.Now()
	}
	if info.Reference == "" {
		info.Reference = uuid.New().String()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(info.Title, false)
	pdf.SetCreator("gohsjoint "+version.Version, false)
	pdf.SetSubject(info.Reference, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, info.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", info.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", info.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", info.Date.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Reference: %s", info.Reference))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Basis: %s", version.Guide))
	pdf.Ln(10)
	if info.Notes != "" {
		pdf.MultiCell(0, 6, info.Notes, "", "L", false)
		pdf.Ln(4)
	}

	g := r.Geometry
	heading(pdf, fmt.Sprintf("1. %s-joint geometry", g.Kind))
	rows := [][2]string{
		{"Chord", g.Chord.Label()},
		{"Brace", g.Brace.Label()},
		{"theta", fmt.Sprintf("%.2f deg", g.ThetaDegrees())},
		{"beta = b1/b0", fmt.Sprintf("%.3f", g.Beta)},
		{"2gamma = b0/t0", fmt.Sprintf("%.2f", g.TwoGamma)},
		{"tau = t1/t0", fmt.Sprintf("%.3f", g.Tau)},
	}
	if g.Kind == joint.K {
		rows = append(rows,
			[2]string{"e", fmt.Sprintf("%.1f mm", g.Eccentricity*1000)},
			[2]string{"Ov", fmt.Sprintf("%.1f %%", g.Ov*100)},
			[2]string{"g'", fmt.Sprintf("%.2f", g.GPrime)},
			[2]string{"Classification", g.Classification.String()},
		)
	} else {
		rows = append(rows,
			[2]string{"alpha", fmt.Sprintf("%.2f", g.Alpha)},
			[2]string{"C (C1, C2, C3)", fmt.Sprintf("%.2f (%.2f, %.2f, %.2f)", g.Fixity, g.C1, g.C2, g.C3)},
		)
	}
	rows = append(rows, [2]string{"Checks", g.Message})
	table(pdf, rows)

	if info.Image != "" {
		pdf.ImageOptions(info.Image, 30, 0, 150, 0, true, gofpdf.ImageOptions{ReadDpi: true}, 0, "")
		pdf.Ln(4)
	}

	if r.FailedGate != check.GateGeometry {
		heading(pdf, "2. Dimensional limits")
		var lim [][2]string
		lim = append(lim, [2]string{"beta", rangeText(g.Beta, r.Limits.Limits.Beta.Min, r.Limits.Limits.Beta.Max)})
		lim = append(lim, [2]string{"2gamma", rangeText(g.TwoGamma, r.Limits.Limits.TwoGamma.Min, r.Limits.Limits.TwoGamma.Max)})
		lim = append(lim, [2]string{"tau", rangeText(g.Tau, r.Limits.Limits.Tau.Min, r.Limits.Limits.Tau.Max)})
		if a := r.Limits.Limits.Alpha; a != nil {
			lim = append(lim, [2]string{"alpha", rangeText(g.Alpha, a.Min, a.Max)})
		}
		lim = append(lim, [2]string{"Result", r.Limits.Message()})
		table(pdf, lim)
	}

	if r.SCF.Family != 0 {
		heading(pdf, fmt.Sprintf("3. Stress concentration factors (%s)", r.SCF.Family))
		table(pdf, scfRows(r.SCF))
	}

	if len(r.Cases) > 0 {
		heading(pdf, "4. Hot-spot stresses")
		pdf.SetFont("Helvetica", "B", 10)
		for _, h := range []string{"Case", "Strategy", "Chord (MPa)", "Brace (MPa)", "Limit (MPa)", "Util.", "Result"} {
			pdf.CellFormat(26, 7, h, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
		for i, c := range r.Cases {
			verdict := "PASS"
			if !c.Result.Pass {
				verdict = "FAIL"
			}
			id := c.Case.ID
			if i == r.Governing {
				id += " *"
			}
			for _, v := range []string{
				id,
				string(c.Result.Strategy),
				fmt.Sprintf("%.2f", c.Result.Chord/1e6),
				fmt.Sprintf("%.2f", c.Result.Brace/1e6),
				fmt.Sprintf("%.2f", c.Result.SigmaMax/1e6),
				fmt.Sprintf("%.3f", c.Result.Utilisation()),
				verdict,
			} {
				pdf.CellFormat(26, 7, v, "1", 0, "C", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.Cell(0, 5, "* governing load case")
		pdf.Ln(8)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, r.Message())
	pdf.Ln(8)

	return pdf.Output(w)
}

// SaveReport writes the PDF report to path
func SaveReport(path string, info ReportInfo, r *check.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	if err := WriteReport(f, info, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, rows [][2]string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(50, 6, r[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(130, 6, r[1], "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(4)
}

func rangeText(v, min, max float64) string {
	ok := "OK"
	if v < min || v > max {
		ok = "OUT OF RANGE"
	}
	return fmt.Sprintf("%.3f in [%g, %g]  %s", v, min, max, ok)
}

func scfRows(s scf.Set) [][2]string {
	f := func(v float64) string { return fmt.Sprintf("%.3f", v) }
	if s.Family == scf.TCHS {
		t := s.T
		return [][2]string{
			{"Chord saddle, axial", f(t.ChordSaddleAx)},
			{"Chord crown, axial", f(t.ChordCrownAx)},
			{"Brace saddle, axial", f(t.BraceSaddleAx)},
			{"Brace crown, axial", f(t.BraceCrownAx)},
			{"Chord crown, IPB", f(t.ChordCrownIPB)},
			{"Brace crown, IPB", f(t.BraceCrownIPB)},
			{"Chord saddle, OPB", f(t.ChordSaddleOPB)},
			{"Brace saddle, OPB", f(t.BraceSaddleOPB)},
			{"F2, F3", f(t.F2) + ", " + f(t.F3)},
		}
	}
	k := s.K
	rows := [][2]string{
		{"SCF_ch,ax", f(k.Chax)},
		{"SCF_b,ax", f(k.Bax)},
		{"SCF_ch,ch", f(k.Chch)},
	}
	if s.Family == scf.KCHS {
		note := ""
		if k.Extrapolated {
			note = " (outside chart, clamped)"
		}
		rows = append(rows,
			[2]string{"SCF_o,ch,ax", f(k.Ochax) + note},
			[2]string{"SCF_o,b,ax", f(k.Obax) + note},
			[2]string{"SCF_b,ax,min", f(k.BaxMin)},
		)
	}
	return rows
}
