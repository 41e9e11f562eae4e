package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osama-ata/structural-analysis/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("structan v%s\n", version.Version)
		fmt.Printf("  build time: %s\n", version.BuildTime)
		fmt.Printf("  git commit: %s\n", version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
