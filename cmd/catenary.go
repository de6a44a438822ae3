package cmd

import (
	"github.com/spf13/cobra"
)

var catenaryCmd = &cobra.Command{
	Use:   "catenary",
	Short: "Suspended cable catenary calculations",
	Long: `Solve the shape of a cable suspended between the seabed touchdown
point and the overboarding chute of a lay vessel.

Subcommands cover single-case solving, batch solving from a spreadsheet
and PDF calculation reports.`,
}

func init() {
	rootCmd.AddCommand(catenaryCmd)
}
