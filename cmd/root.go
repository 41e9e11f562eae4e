package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osama-ata/structural-analysis/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "structan",
	Short: "Structural Analysis Calculator",
	Long: `structan - Structural Analysis Calculator

A CLI tool for closed-form structural engineering calculations.

This tool helps structural engineers perform:
  - Euler-Bernoulli beam bending analysis (deflection, moment, shear)
  - Euler column buckling checks
  - Cross-section property calculations

All calculations use SI units (m, Pa, N) and classical closed-form
solutions; no numerical solvers are involved.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   structan v%-46s║\n", version.Version)
		fmt.Println("  ║   Structural Analysis Calculator                          ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Closed-form structural engineering calculations:")
		fmt.Println()
		fmt.Println("    • Euler-Bernoulli beam fields (simply supported, cantilever, fixed-fixed)")
		fmt.Println("    • Euler column buckling with design recommendations")
		fmt.Println("    • Section properties for rectangles, circles and I-shapes")
		fmt.Println()
		fmt.Println("  Use 'structan --help' to see available commands.")
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
