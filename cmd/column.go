package cmd

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column",
	Short: "Column stability commands",
	Long: `Commands for elastic column stability checks.

Use the subcommands to compute Euler critical loads and design
recommendations for compression members.`,
}

func init() {
	rootCmd.AddCommand(columnCmd)
}
