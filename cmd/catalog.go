package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gohsjoint/internal/section"
	"github.com/spf13/cobra"
)

var (
	catalogFile     string
	catalogStandard string
	catalogClass    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Hollow section catalog",
	Long: `Inspect the section catalog used for designations and sweeps.

The built-in catalog holds EN 10219 and AS/NZS 1163 sizes. A custom
catalog can be supplied as .csv or .xlsx with the columns:
  standard, designation, class, d, b, t   (mm)
and optionally
  area (mm²), ix, iy (10⁶ mm⁴)
which override the values generated from the nominal dimensions.

Subcommands:
  list  - List sections with their properties`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog sections",
	Long: `List the sections of the catalog with their generated properties.

Examples:
  gohsjoint catalog list
  gohsjoint catalog list --standard AS --class CHS
  gohsjoint catalog list --file sections.xlsx`,
	RunE: runCatalogList,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Catalog file (.csv, .xlsx) instead of the built-in one")
	catalogListCmd.Flags().StringVar(&catalogStandard, "standard", "", "Only list this standard (EN, AS)")
	catalogListCmd.Flags().StringVar(&catalogClass, "class", "", "Only list this class (CHS, SHS, RHS)")
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}

	var classes []section.Class
	if catalogClass != "" {
		c, err := section.ParseClass(catalogClass)
		if err != nil {
			return err
		}
		classes = append(classes, c)
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     HOLLOW SECTION CATALOG")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Standard\tDesignation\tClass\td (mm)\tb (mm)\tt (mm)\tA (mm²)\tIx (10⁶ mm⁴)\tIy (10⁶ mm⁴)\t")
	n := 0
	for _, e := range cat.Entries() {
		if catalogStandard != "" && !strings.EqualFold(e.Standard, catalogStandard) {
			continue
		}
		p := e.Properties
		if len(classes) > 0 && p.Class != classes[0] {
			continue
		}
		n++
		fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.1f\t%.1f\t%.0f\t%.2f\t%.2f\t\n",
			e.Standard, p.Label(), p.Class, p.Depth*1e3, p.Width*1e3, p.Thickness*1e3,
			p.Area*1e6, p.Ix*1e6, p.Iy*1e6)
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("  %d of %d sections\n", n, cat.Len())
	fmt.Println()
	return nil
}
