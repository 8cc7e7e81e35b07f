package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gohsjoint/internal/check"
	"github.com/alexiusacademia/gohsjoint/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	checkFile    string
	checkCatalog string
	checkOutput  outputFlags
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a joint defined in a YAML file",
	Long: `Check a K- or T-joint defined in a YAML file with any number of
load cases. The governing case is the one with the highest
utilisation.

Units in the file: mm, mm², 10⁶ mm⁴, kN, kN-m, MPa and degrees.

Example file:
  joint: K
  standard: EN
  chord:
    designation: 400x400x16 SHS
  brace:
    class: SHS
    d: 200
    t: 10
  layout:
    eccentricity: -150
    spacing: 2000
    length: 8000
    divisions: 4
  fatigue:
    sigma_max: 80
    strategy: components
  cases:
    - id: dead
      p_chord: 70
      p_brace: 50
    - id: wind
      p_chord: -20
      mop_chord: 4
  combinations:
    - id: C1
      factors: {dead: 1.0, wind: 0.5}

The --file flag also accepts a glob pattern ("joints/**/*.yaml").
Each matching file is checked in turn; plot and report names get the
file name appended.

Examples:
  gohsjoint check --file joint.yaml
  gohsjoint check -f joint.yaml --diagram --pdf joint.pdf
  gohsjoint check -f "truss/**/*.yaml" --pdf report.pdf`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Path or glob pattern of joint YAML files [required]")
	checkCmd.Flags().StringVar(&checkCatalog, "catalog", "", "Section catalog file (.csv, .xlsx) instead of the built-in one")
	checkOutput.bind(checkCmd)

	checkCmd.MarkFlagRequired("file")
}

func runCheck(cmd *cobra.Command, args []string) error {
	files, err := check.Files(checkFile)
	if err != nil {
		return err
	}
	if len(files) == 1 {
		f, err := check.LoadFile(files[0])
		if err != nil {
			return err
		}
		_, err = runFile(f, checkCatalog, checkOutput)
		return err
	}

	var summary []string
	for _, path := range files {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		out := checkOutput
		if out.plot != "" {
			out.plot = suffixed(out.plot, stem)
		}
		if out.pdf != "" {
			out.pdf = suffixed(out.pdf, stem)
		}

		fmt.Printf("\n▶ %s\n", path)
		var r *check.Report
		f, err := check.LoadFile(path)
		if err == nil {
			r, err = runFile(f, checkCatalog, out)
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			summary = append(summary, fmt.Sprintf("%s ✗ error", path))
			continue
		}
		summary = append(summary, fmt.Sprintf("%s %s", path, mark(r.Pass)))
	}

	fmt.Print(diagram.DrawSummaryBox(fmt.Sprintf("%d JOINT FILES", len(files)), summary))
	return nil
}
