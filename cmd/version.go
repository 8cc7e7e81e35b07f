package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gohsjoint/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gohsjoint",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gohsjoint v%s\n", version.Version)
		fmt.Println("Hollow Section Truss Joint Fatigue Checker")
		fmt.Printf("Based on %s\n", version.Guide)
		fmt.Printf("Build: %s (%s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
