package cmd

import (
	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/spf13/cobra"
)

var (
	kChord memberFlags
	kBrace memberFlags

	kStandard string
	kCatalog  string

	// Layout inputs
	kEccentricity float64
	kSpacing      float64
	kLength       float64
	kDivisions    int

	// Forces
	kPChord   float64
	kPBrace   float64
	kMipChord float64
	kMopChord float64
	kMopBrace float64

	kFatigue fatigueFlags
	kOutput  outputFlags
)

var kjointCmd = &cobra.Command{
	Use:   "kjoint",
	Short: "Fatigue check of a K-joint",
	Long: `Check a welded K-joint of two inclined braces on a continuous chord.

The check runs in four stages and stops at the first failure:
  1. Geometry: brace angle, eccentricity, gap or overlap
  2. Dimensional limits of validity (β, 2γ, τ)
  3. Stress concentration factors (gap RHS, overlap RHS or CHS)
  4. Hot-spot stress superposition against σ_max

The brace angle follows from the truss layout:
  θ = atan((s + 2e) / (L / n))

Examples:
  # SHS chord and brace from the catalog with the default layout and forces
  gohsjoint kjoint --chord "400x400x16 SHS" --brace "200x200x10 SHS"

  # Sections by dimensions, 150 mm negative eccentricity, components strategy
  gohsjoint kjoint --chord-class SHS --chord-d 400 --chord-t 16 \
    --brace-class SHS --brace-d 200 --brace-t 10 -e -150 --strategy components

  # Export plots and a PDF report
  gohsjoint kjoint --chord "400x400x16 SHS" --brace "200x200x10 SHS" -o joint.png --pdf joint.pdf`,
	RunE: runKJoint,
}

func init() {
	rootCmd.AddCommand(kjointCmd)

	// Member flags
	kChord.bind(kjointCmd, "chord")
	kBrace.bind(kjointCmd, "brace")
	kjointCmd.Flags().StringVar(&kStandard, "standard", "", "Catalog standard for designations (EN, AS)")
	kjointCmd.Flags().StringVar(&kCatalog, "catalog", "", "Section catalog file (.csv, .xlsx) instead of the built-in one")

	// Layout flags
	kjointCmd.Flags().Float64VarP(&kEccentricity, "eccentricity", "e", -100, "Joint eccentricity e (mm), negative towards the braces")
	kjointCmd.Flags().Float64VarP(&kSpacing, "spacing", "s", 2000, "Chord centreline spacing s (mm)")
	kjointCmd.Flags().Float64VarP(&kLength, "length", "L", 8000, "Chord span L (mm)")
	kjointCmd.Flags().IntVarP(&kDivisions, "divisions", "n", 4, "Number of panels along the chord")

	// Force flags
	kjointCmd.Flags().Float64Var(&kPChord, "p-chord", 70, "Chord axial force (kN)")
	kjointCmd.Flags().Float64Var(&kPBrace, "p-brace", 50, "Brace axial force (kN)")
	kjointCmd.Flags().Float64Var(&kMipChord, "mip-chord", 5, "Chord in-plane moment (kN-m)")
	kjointCmd.Flags().Float64Var(&kMopChord, "mop-chord", 5, "Chord out-of-plane moment (kN-m)")
	kjointCmd.Flags().Float64Var(&kMopBrace, "mop-brace", 5, "Brace out-of-plane moment (kN-m)")

	kFatigue.bind(kjointCmd, true)
	kOutput.bind(kjointCmd)
}

func runKJoint(cmd *cobra.Command, args []string) error {
	if err := kChord.validate("chord"); err != nil {
		return err
	}
	if err := kBrace.validate("brace"); err != nil {
		return err
	}

	f := &check.File{
		Joint:    "K",
		Standard: kStandard,
		Chord:    kChord.input(),
		Brace:    kBrace.input(),
		Layout: check.LayoutInput{
			Eccentricity: kEccentricity,
			Spacing:      kSpacing,
			Length:       kLength,
			Divisions:    kDivisions,
		},
		Fatigue: kFatigue.config(),
		Cases: []check.CaseInput{{
			ID:          "1",
			Description: "command line",
			PChord:      kPChord,
			PBrace:      kPBrace,
			MipChord:    kMipChord,
			MopChord:    kMopChord,
			MopBrace:    kMopBrace,
		}},
	}
	_, err := runFile(f, kCatalog, kOutput)
	return err
}
