package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k-mcmonagle/gocable/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gocable",
	Short: "Submarine Cable Catenary Calculator",
	Long: `gocable - Suspended Cable Catenary Calculator

A CLI tool for submarine cable lay engineering: computes the shape,
tensions and bend radius of a cable suspended between the seabed
touchdown point and the overboarding chute of a lay vessel.

The solver handles:
  - Variable weight per length in water and in air
  - Cable assemblies with segments and point loads
  - A curved chute departure with automatic contact-length coupling
  - Five solve targets: bottom tension, top tension, exit angle,
    total suspended length, or layback`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gocable v%-47s║\n", version.Version)
		fmt.Println("  ║   Suspended Cable Catenary Calculator                     ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for submarine cable lay engineering.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Catenary solve for bottom/top tension, exit angle, length or layback")
		fmt.Println("    • Cable assemblies with distributed weights and point loads")
		fmt.Println("    • Chute departure geometry with contact-length coupling")
		fmt.Println("    • Profile diagrams (terminal, png/svg/pdf), xlsx and PDF reports")
		fmt.Println("    • Batch solving from spreadsheet case lists")
		fmt.Println()
		fmt.Println("  Use 'gocable --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
