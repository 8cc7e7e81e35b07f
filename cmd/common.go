package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/alexiusacademia/gohsjoint/internal/catalog"
	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/alexiusacademia/gohsjoint/internal/diagram"
	"github.com/alexiusacademia/gohsjoint/internal/export"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/scf"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

// memberFlags describes a chord or brace on the command line, either by
// designation or by dimensions in mm
type memberFlags struct {
	designation string
	class       string
	d, b, t     float64
	rotate      bool
}

func (m *memberFlags) bind(c *cobra.Command, name string) {
	c.Flags().StringVar(&m.designation, name, "", fmt.Sprintf("%s catalog designation, e.g. \"400x400x16 SHS\"", name))
	c.Flags().StringVar(&m.class, name+"-class", "", fmt.Sprintf("%s class (CHS, SHS, RHS) when given by dimensions", name))
	c.Flags().Float64Var(&m.d, name+"-d", 0, fmt.Sprintf("%s depth or diameter (mm)", name))
	c.Flags().Float64Var(&m.b, name+"-b", 0, fmt.Sprintf("%s width (mm), defaults to the depth", name))
	c.Flags().Float64Var(&m.t, name+"-t", 0, fmt.Sprintf("%s wall thickness (mm)", name))
	c.Flags().BoolVar(&m.rotate, name+"-rotate", false, fmt.Sprintf("Turn the %s RHS through 90 degrees", name))
}

func (m memberFlags) validate(name string) error {
	if m.designation == "" && (m.d == 0 || m.t == 0) {
		return fmt.Errorf("%s: give --%s or --%s-class with --%s-d and --%s-t", name, name, name, name, name)
	}
	return nil
}

func (m memberFlags) input() check.MemberInput {
	return check.MemberInput{
		Designation: m.designation,
		Class:       m.class,
		D:           m.d,
		B:           m.b,
		T:           m.t,
		Rotate:      m.rotate,
	}
}

// fatigueFlags override the configured fatigue settings; zero keeps the
// configured value
type fatigueFlags struct {
	sigmaMax   float64
	strategy   string
	scfChordOP float64
	scfBraceOP float64
}

func (f *fatigueFlags) bind(c *cobra.Command, outOfPlane bool) {
	c.Flags().Float64Var(&f.sigmaMax, "sigma-max", 0, "Allowable hot-spot stress (MPa), 0 = configured")
	c.Flags().StringVar(&f.strategy, "strategy", "", "Stress superposition: combined, components or hotspot")
	if outOfPlane {
		c.Flags().Float64Var(&f.scfChordOP, "scf-chord-op", 0, "Chord out-of-plane SCF, 0 = configured")
		c.Flags().Float64Var(&f.scfBraceOP, "scf-brace-op", 0, "Brace out-of-plane SCF, 0 = configured")
	}
}

func (f fatigueFlags) config() config.FatigueConfig {
	return config.FatigueConfig{
		SigmaMax:   f.sigmaMax,
		Strategy:   f.strategy,
		SCFChordOP: f.scfChordOP,
		SCFBraceOP: f.scfBraceOP,
	}
}

// outputFlags select the optional diagrams and exports
type outputFlags struct {
	diagram   bool
	plot      string
	pdf       string
	project   string
	author    string
	reference string
}

func (o *outputFlags) bind(c *cobra.Command) {
	c.Flags().BoolVar(&o.diagram, "diagram", false, "Show ASCII joint sketch and stress bars")
	c.Flags().StringVarP(&o.plot, "plot", "o", "", "Export joint plots to file (png, svg, pdf)")
	c.Flags().StringVar(&o.pdf, "pdf", "", "Write a PDF calculation report")
	c.Flags().StringVar(&o.project, "project", "", "Project name for the PDF report")
	c.Flags().StringVar(&o.author, "author", "", "Author for the PDF report")
	c.Flags().StringVar(&o.reference, "reference", "", "Calculation reference for the PDF report (default: generated)")
}

// loadCatalog returns the built-in catalog, or the file at path
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	c, err := catalog.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded catalog", slog.String("path", path), slog.Int("sections", c.Len()))
	return c, nil
}

// runFile resolves and evaluates a joint file, then prints and exports it
func runFile(f *check.File, catalogPath string, out outputFlags) (*check.Report, error) {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	j, cases, opts, err := f.Resolve(cat, cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug("Evaluating joint",
		slog.String("kind", j.Kind.String()),
		slog.String("chord", j.Chord.Label()),
		slog.String("brace", j.Brace.Label()),
		slog.Int("cases", len(cases)))

	r, err := check.Evaluate(j, cases, opts)
	if err != nil {
		return nil, err
	}

	printReport(r, out.diagram)
	return r, writeOutputs(r, out)
}

func printReport(r *check.Report, showDiagram bool) {
	g := r.Geometry

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s-JOINT FATIGUE CHECK - CIDECT DESIGN GUIDE 8\n", g.Kind)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("MEMBERS:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  \tSection\tA (mm²)\tIx (10⁶ mm⁴)\tIy (10⁶ mm⁴)")
	printMember(w, "Chord", g.Chord)
	printMember(w, "Brace", g.Brace)
	w.Flush()
	fmt.Println()

	fmt.Println("JOINT GEOMETRY:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Brace angle (θ):\t%.2f°\n", g.ThetaDegrees())
	fmt.Fprintf(w, "  β = b1/b0:\t%.3f\n", g.Beta)
	fmt.Fprintf(w, "  2γ = b0/t0:\t%.2f\n", g.TwoGamma)
	fmt.Fprintf(w, "  τ = t1/t0:\t%.3f\n", g.Tau)
	if g.Kind == joint.K {
		fmt.Fprintf(w, "  Eccentricity (e):\t%.1f mm\n", g.Eccentricity*1000)
		fmt.Fprintf(w, "  Overlap (Ov):\t%.1f %%\n", g.Ov*100)
		fmt.Fprintf(w, "  Gap (g'):\t%.2f\n", g.GPrime)
		fmt.Fprintf(w, "  Classification:\t%s\n", g.Classification)
	} else {
		fmt.Fprintf(w, "  Chord length parameter (α):\t%.2f\n", g.Alpha)
		fmt.Fprintf(w, "  End fixity (C):\t%.2f\n", g.Fixity)
		fmt.Fprintf(w, "  C1, C2, C3:\t%.2f, %.2f, %.2f\n", g.C1, g.C2, g.C3)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  %s %s\n", mark(g.Valid()), g.Message)

	if showDiagram {
		fmt.Println(diagram.DrawJointSketch(g))
	}

	if r.FailedGate != check.GateGeometry {
		if showDiagram {
			fmt.Println(diagram.DrawLimitBars(g, r.Limits))
		} else {
			fmt.Println()
			fmt.Println("DIMENSIONAL LIMITS:")
			fmt.Println(rule)
			fmt.Printf("  %s %s\n", mark(r.Limits.Pass), r.Limits.Message())
		}
	}

	if r.SCF.Family != 0 {
		fmt.Println()
		fmt.Printf("STRESS CONCENTRATION FACTORS (%s):\n", r.SCF.Family)
		fmt.Println(rule)
		printSCF(r.SCF)
	}

	if len(r.Cases) > 0 {
		fmt.Println()
		fmt.Println("HOT-SPOT STRESSES:")
		fmt.Println(rule)
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "  Case\tDescription\tσ_chord (MPa)\tσ_brace (MPa)\tUtilisation\t")
		for i, c := range r.Cases {
			gov := ""
			if i == r.Governing {
				gov = "◄ governing"
			}
			fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\t%.3f %s\t%s\n",
				c.Case.ID, c.Case.Description, c.Result.Chord/1e6, c.Result.Brace/1e6,
				c.Result.Utilisation(), mark(c.Result.Pass), gov)
		}
		w.Flush()

		if gc := r.GoverningCase(); gc != nil && showDiagram {
			fmt.Println(diagram.DrawStressBars(gc.Result))
		}
	}

	fmt.Println()
	lines := []string{
		fmt.Sprintf("Chord: %s", g.Chord.Label()),
		fmt.Sprintf("Brace: %s", g.Brace.Label()),
	}
	if gc := r.GoverningCase(); gc != nil {
		lines = append(lines,
			fmt.Sprintf("Governing case %s: σ = %.2f / %.2f MPa", gc.Case.ID,
				max(gc.Result.Chord, gc.Result.Brace)/1e6, gc.Result.SigmaMax/1e6))
	}
	lines = append(lines, r.Message())
	fmt.Print(diagram.DrawSummaryBox("RESULT", lines))
	fmt.Println()
}

func printMember(w *tabwriter.Writer, name string, p section.Properties) {
	fmt.Fprintf(w, "  %s:\t%s\t%.0f\t%.2f\t%.2f\n", name, p.Label(), p.Area*1e6, p.Ix*1e6, p.Iy*1e6)
}

func printSCF(s scf.Set) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	if s.Family == scf.TCHS {
		t := s.T
		fmt.Fprintln(w, "  \tChord saddle\tChord crown\tBrace saddle\tBrace crown")
		fmt.Fprintf(w, "  Axial:\t%.3f\t%.3f\t%.3f\t%.3f\n", t.ChordSaddleAx, t.ChordCrownAx, t.BraceSaddleAx, t.BraceCrownAx)
		fmt.Fprintf(w, "  In-plane bending:\t-\t%.3f\t-\t%.3f\n", t.ChordCrownIPB, t.BraceCrownIPB)
		fmt.Fprintf(w, "  Out-of-plane bending:\t%.3f\t-\t%.3f\t-\n", t.ChordSaddleOPB, t.BraceSaddleOPB)
		fmt.Fprintf(w, "  Short chord (F2, F3):\t%.3f\t%.3f\t\t\n", t.F2, t.F3)
		return
	}

	k := s.K
	fmt.Fprintf(w, "  SCF_ch,ax:\t%.3f\n", k.Chax)
	fmt.Fprintf(w, "  SCF_b,ax:\t%.3f\n", k.Bax)
	fmt.Fprintf(w, "  SCF_ch,ch:\t%.3f\n", k.Chch)
	if s.Family == scf.KCHS {
		fmt.Fprintf(w, "  SCF_o,ch,ax (chart):\t%.3f\n", k.Ochax)
		fmt.Fprintf(w, "  SCF_o,b,ax (chart):\t%.3f\n", k.Obax)
		fmt.Fprintf(w, "  SCF_b,ax,min:\t%.3f\n", k.BaxMin)
		if k.Extrapolated {
			fmt.Fprintln(w, "  ⚠ Outside chart range:\tvalues clamped to the chart edge")
		}
	}
}

// writeOutputs exports the plots and the PDF report requested by out
func writeOutputs(r *check.Report, out outputFlags) error {
	var image string
	if out.plot != "" {
		path, err := diagram.ExportJointGeometry(r.Geometry, out.plot)
		if err != nil {
			return fmt.Errorf("failed to export joint plot: %w", err)
		}
		fmt.Printf("Joint plot exported to: %s\n", path)
		if strings.EqualFold(filepath.Ext(path), ".png") {
			image = path
		}

		if r.FailedGate != check.GateGeometry {
			name, err := diagram.ExportLimitsChart(r.Geometry, r.Limits, suffixed(path, "limits"))
			if err != nil {
				return fmt.Errorf("failed to export limits chart: %w", err)
			}
			fmt.Printf("Limits chart exported to: %s\n", name)
		}
		if gc := r.GoverningCase(); gc != nil {
			name, err := diagram.ExportStressChart(gc.Result, suffixed(path, "stress"))
			if err != nil {
				return fmt.Errorf("failed to export stress chart: %w", err)
			}
			fmt.Printf("Stress chart exported to: %s\n", name)
		}
	}

	if out.pdf != "" {
		info := export.ReportInfo{
			Project:   out.project,
			Author:    out.author,
			Reference: out.reference,
			Date:      time.Now(),
			Image:     image,
		}
		if err := export.SaveReport(out.pdf, info, r); err != nil {
			return err
		}
		fmt.Printf("Report written to: %s\n", out.pdf)
	}
	return nil
}

// suffixed inserts a suffix before the file extension: joint.png -> joint-stress.png
func suffixed(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + suffix + ext
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
