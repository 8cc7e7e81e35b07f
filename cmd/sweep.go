package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/cidect"
	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/alexiusacademia/gohsjoint/internal/diagram"
	"github.com/alexiusacademia/gohsjoint/internal/export"
	"github.com/alexiusacademia/gohsjoint/internal/joint"
	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/alexiusacademia/gohsjoint/internal/stress"
	"github.com/spf13/cobra"
)

var (
	sweepKind       string
	sweepChordClass string
	sweepBraceClass string
	sweepStandard   string
	sweepCatalog    string
	sweepWorkers    int

	// Layout inputs
	sweepEccentricity float64
	sweepSpacing      float64
	sweepLength       float64
	sweepDivisions    int
	sweepAngle        float64

	// Forces
	sweepPChord   float64
	sweepPBrace   float64
	sweepMipChord float64
	sweepMopChord float64
	sweepMopBrace float64
	sweepMipBrace float64

	sweepFatigue fatigueFlags

	sweepAll   bool
	sweepChart bool
	sweepXLSX  string
	sweepPlot  string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Check every chord and brace combination in the catalog",
	Long: `Evaluate all compatible chord/brace pairs from the section catalog
for one joint layout and load case. Braces wider than the chord and
mixed circular/rectangular pairs are skipped.

Pairs are evaluated concurrently (see --workers). Results keep the
catalog order, so repeated runs give identical output.

Examples:
  # All EN SHS pairs for the default K-joint
  gohsjoint sweep

  # AS CHS T-joints, passing pairs exported to Excel
  gohsjoint sweep --kind T --class CHS --standard AS --xlsx sweep.xlsx

  # Chart of governing stresses and a scatter plot
  gohsjoint sweep --chart --plot sweep.png`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	sweepCmd.Flags().StringVar(&sweepKind, "kind", "K", "Joint kind (K or T)")
	sweepCmd.Flags().StringVar(&sweepChordClass, "class", "SHS", "Chord class (CHS, SHS, RHS)")
	sweepCmd.Flags().StringVar(&sweepBraceClass, "brace-class", "", "Brace class, defaults to the chord class")
	sweepCmd.Flags().StringVar(&sweepStandard, "standard", "", "Catalog standard (default: configured)")
	sweepCmd.Flags().StringVar(&sweepCatalog, "catalog", "", "Section catalog file (.csv, .xlsx) instead of the built-in one")
	sweepCmd.Flags().IntVarP(&sweepWorkers, "workers", "w", 0, "Concurrent evaluations (default: configured)")

	// Layout flags
	sweepCmd.Flags().Float64VarP(&sweepEccentricity, "eccentricity", "e", -100, "K-joint eccentricity e (mm)")
	sweepCmd.Flags().Float64VarP(&sweepSpacing, "spacing", "s", 2000, "K-joint chord spacing s (mm)")
	sweepCmd.Flags().Float64VarP(&sweepLength, "length", "L", 8000, "Chord span L (mm)")
	sweepCmd.Flags().IntVarP(&sweepDivisions, "divisions", "n", 4, "Number of panels along the chord")
	sweepCmd.Flags().Float64Var(&sweepAngle, "angle", 90, "T-joint brace angle θ (degrees)")

	// Force flags
	sweepCmd.Flags().Float64Var(&sweepPChord, "p-chord", 70, "Chord axial force (kN)")
	sweepCmd.Flags().Float64Var(&sweepPBrace, "p-brace", 50, "Brace axial force (kN)")
	sweepCmd.Flags().Float64Var(&sweepMipChord, "mip-chord", 5, "Chord in-plane moment (kN-m)")
	sweepCmd.Flags().Float64Var(&sweepMopChord, "mop-chord", 5, "Chord out-of-plane moment (kN-m)")
	sweepCmd.Flags().Float64Var(&sweepMopBrace, "mop-brace", 5, "Brace out-of-plane moment (kN-m)")
	sweepCmd.Flags().Float64Var(&sweepMipBrace, "mip-brace", 0, "Brace in-plane moment, T-joints (kN-m)")

	sweepFatigue.bind(sweepCmd, true)

	// Output flags
	sweepCmd.Flags().BoolVarP(&sweepAll, "all", "a", false, "List failing and skipped pairs too")
	sweepCmd.Flags().BoolVar(&sweepChart, "chart", false, "Show an ASCII chart of the governing stresses")
	sweepCmd.Flags().StringVar(&sweepXLSX, "xlsx", "", "Export all results to an Excel workbook")
	sweepCmd.Flags().StringVarP(&sweepPlot, "plot", "o", "", "Export a chord/brace stress scatter plot (png, svg, pdf)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	var kind joint.Kind
	switch strings.ToUpper(sweepKind) {
	case "K":
		kind = joint.K
	case "T":
		kind = joint.T
	default:
		return cidect.NewInputError("kind", "unknown joint kind %q (want K or T)", sweepKind)
	}

	chordClass, err := section.ParseClass(sweepChordClass)
	if err != nil {
		return err
	}
	braceClass := chordClass
	if sweepBraceClass != "" {
		if braceClass, err = section.ParseClass(sweepBraceClass); err != nil {
			return err
		}
	}

	cat, err := loadCatalog(sweepCatalog)
	if err != nil {
		return err
	}
	standard := cfg.Sweep.Standard
	if sweepStandard != "" {
		standard = sweepStandard
	}
	chords := cat.Filter(standard, chordClass)
	braces := cat.Filter(standard, braceClass)
	if len(chords) == 0 || len(braces) == 0 {
		return fmt.Errorf("no %s/%s sections in the %s catalog", chordClass, braceClass, standard)
	}

	settings := *cfg
	settings.Merge(&config.Config{Fatigue: sweepFatigue.config()})
	if err := settings.Validate(); err != nil {
		return err
	}
	opts, err := settings.StressOptions()
	if err != nil {
		return err
	}
	workers := settings.Workers()
	if sweepWorkers > 0 {
		workers = sweepWorkers
	}

	lc := check.CaseInput{
		ID:          "1",
		Description: "command line",
		PChord:      sweepPChord,
		PBrace:      sweepPBrace,
		MipChord:    sweepMipChord,
		MopChord:    sweepMopChord,
		MopBrace:    sweepMopBrace,
		MipBrace:    sweepMipBrace,
	}.LoadCase(0, settings.Fatigue)

	sweepOpts := check.SweepOptions{
		Kind: kind,
		K: joint.KLayout{
			Eccentricity: sweepEccentricity * cidect.MM,
			ChordSpacing: sweepSpacing * cidect.MM,
			ChordLength:  sweepLength * cidect.MM,
			Divisions:    sweepDivisions,
		},
		T: joint.TLayout{
			ChordLength: sweepLength * cidect.MM,
			Divisions:   sweepDivisions,
			Angle:       cidect.Radians(sweepAngle),
			Fixity:      settings.Fixity(),
		},
		Stress:  opts,
		Workers: workers,
		Logger:  logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := check.Sweep(ctx, chords, braces, []stress.LoadCase{lc}, sweepOpts)
	if err != nil {
		return fmt.Errorf("sweep interrupted: %w", err)
	}

	printSweep(results, opts.SigmaMax, standard)

	if sweepChart {
		fmt.Println(diagram.DrawSweepChart(results, opts.SigmaMax))
	}
	if sweepXLSX != "" {
		if err := export.SaveSweep(sweepXLSX, results, opts.SigmaMax); err != nil {
			return err
		}
		fmt.Printf("Workbook exported to: %s\n", sweepXLSX)
	}
	if sweepPlot != "" {
		name, err := diagram.ExportSweepScatter(results, opts.SigmaMax, sweepPlot)
		if err != nil {
			return fmt.Errorf("failed to export sweep plot: %w", err)
		}
		fmt.Printf("Scatter plot exported to: %s\n", name)
	}
	return nil
}

func printSweep(results []check.SweepResult, sigmaMax float64, standard string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     CATALOG SWEEP - %s SECTIONS, σ_max = %.1f MPa\n", strings.ToUpper(standard), sigmaMax/1e6)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  Chord\tBrace\tJoint\tσ_chord (MPa)\tσ_brace (MPa)\tResult")
	passed, failed, skipped := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			skipped++
			if sweepAll {
				fmt.Fprintf(w, "  %s\t%s\t-\t-\t-\t✗ %v\n", r.Chord.Label(), r.Brace.Label(), r.Err)
			}
		case r.Report.Pass:
			passed++
			gc := r.Report.GoverningCase()
			fmt.Fprintf(w, "  %s\t%s\t%s\t%.2f\t%.2f\t✓\n", r.Chord.Label(), r.Brace.Label(),
				jointLabel(r.Report.Geometry), gc.Result.Chord/1e6, gc.Result.Brace/1e6)
		default:
			failed++
			if !sweepAll {
				continue
			}
			chord, brace := "-", "-"
			if gc := r.Report.GoverningCase(); gc != nil {
				chord = fmt.Sprintf("%.2f", gc.Result.Chord/1e6)
				brace = fmt.Sprintf("%.2f", gc.Result.Brace/1e6)
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t✗ %s\n", r.Chord.Label(), r.Brace.Label(),
				jointLabel(r.Report.Geometry), chord, brace, r.Report.FailedGate)
		}
	}
	w.Flush()

	fmt.Println()
	fmt.Print(diagram.DrawSummaryBox("SWEEP SUMMARY", []string{
		fmt.Sprintf("Pairs evaluated: %d", len(results)),
		fmt.Sprintf("Passed: %d", passed),
		fmt.Sprintf("Failed: %d", failed),
		fmt.Sprintf("Skipped (invalid input): %d", skipped),
	}))
	fmt.Println()
}

// jointLabel is the gap/overlap classification of a K-joint, or "T"
func jointLabel(g *joint.Geometry) string {
	if g.Kind == joint.T {
		return "T"
	}
	return g.Classification.String()
}
