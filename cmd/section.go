package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section property commands",
	Long: `Commands for computing cross-section geometric properties.

The computed second moment of area and cross-sectional area can be fed
directly into 'beam analyze' and 'column buckling'.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
