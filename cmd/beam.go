package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Beam bending commands",
	Long: `Commands for Euler-Bernoulli beam bending analysis.

Use the subcommands to evaluate deflection, bending moment and shear
fields for a beam under a point load, a uniformly distributed load, or
an applied moment.`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
