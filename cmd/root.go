package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gohsjoint/internal/config"
	"github.com/alexiusacademia/gohsjoint/internal/version"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	// set by the root command before any subcommand runs
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gohsjoint",
	Short: "Hollow Section Truss Joint Fatigue Checker",
	Long: `gohsjoint - Go Hollow Section Joint Checker

A CLI tool for the fatigue check of welded hollow section truss
joints based on CIDECT Design Guide 8.

This tool helps structural engineers perform:
  - K-joint geometry checks (angle, eccentricity, gap and overlap)
  - T-joint geometry and chord length checks
  - Dimensional limits of validity (β, 2γ, τ, α)
  - Stress concentration factors for CHS, SHS and RHS joints
  - Hot-spot stress superposition against an allowable stress
  - Catalog sweeps of chord and brace combinations

Settings are read from ~/.config/gohsjoint/config.yaml, then
./gohsjoint.yaml, then the file given with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)

		c, err := config.NewLoader(logger).Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = c
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gohsjoint v%-45s║\n", version.Version)
		fmt.Println("  ║   Go Hollow Section Joint Checker                         ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the fatigue check of welded hollow section")
		fmt.Printf("  truss joints based on %s.\n", version.Guide)
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • K-joint and T-joint geometry and validity checks")
		fmt.Println("    • Stress concentration factors and hot-spot stresses")
		fmt.Println("    • YAML joint files with multiple load cases")
		fmt.Println("    • Concurrent catalog sweeps with Excel export")
		fmt.Println("    • PNG/SVG/PDF plots and PDF calculation reports")
		fmt.Println()
		fmt.Println("  Use 'gohsjoint --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}
