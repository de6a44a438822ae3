package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/k-mcmonagle/gocable/internal/units"
)

var (
	weightValue float64
	weightFrom  string
	weightTo    string
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Convert cable weight per length between units",
	Long: `Convert a cable weight-per-length figure between the units used on
cable datasheets: N/m, kgf/m and lbf/ft.

Examples:
  # Show a 2.3 kgf/m cable in all units
  gocable weight --value 2.3 --from kgf/m

  # Single target unit
  gocable weight --value 15 --from lbf/ft --to n/m`,
	Run: runWeight,
}

func init() {
	rootCmd.AddCommand(weightCmd)

	weightCmd.Flags().Float64VarP(&weightValue, "value", "v", 0, "Weight per length value [required]")
	weightCmd.Flags().StringVar(&weightFrom, "from", "n/m", "Source unit (n/m, kgf/m, lbf/ft)")
	weightCmd.Flags().StringVar(&weightTo, "to", "", "Target unit; all units when omitted")

	weightCmd.MarkFlagRequired("value")
}

func runWeight(cmd *cobra.Command, args []string) {
	from, err := units.ParseWeightUnit(weightFrom)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if weightTo != "" {
		to, err := units.ParseWeightUnit(weightTo)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		converted, err := units.Convert(weightValue, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("%.4f %s = %.4f %s\n", weightValue, from, converted, to)
		return
	}

	fmt.Println()
	fmt.Printf("  %.4f %s converts to:\n", weightValue, from)
	fmt.Println("  ───────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, to := range []units.WeightUnit{units.NewtonPerMetre, units.KgfPerMetre, units.LbfPerFoot} {
		converted, err := units.Convert(weightValue, from, to)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Fprintf(w, "  %s:\t%.4f\n", to, converted)
	}
	w.Flush()
	fmt.Println()
}
