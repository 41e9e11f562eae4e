package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osama-ata/structural-analysis/internal/column"
	"github.com/osama-ata/structural-analysis/internal/diagram"
	"github.com/osama-ata/structural-analysis/internal/material"
)

var (
	colLength   float64
	colModulus  float64
	colInertia  float64
	colMaterial string
	colArea     float64

	colEndCondition string
	colSafetyFactor float64
	colPlotFile     string
)

var columnBucklingCmd = &cobra.Command{
	Use:   "buckling",
	Short: "Compute the Euler critical buckling load",
	Long: `Compute the Euler critical load P_cr = π²EI/(KL)² together with the
design load, critical stress, slenderness ratio and a qualitative
design recommendation.

End conditions and effective-length factors:
  pinned        K = 1.0  (both ends pinned)
  fixed         K = 0.5  (both ends fixed)
  fixed_free    K = 2.0  (one end fixed, one free)
  fixed_pinned  K = 0.7  (one end fixed, one pinned)

When --area is omitted the cross-sectional area is estimated as √I,
which makes the stress and slenderness outputs approximate.

Examples:
  # Pinned steel column
  structan column buckling --length 4 --modulus 200e9 --inertia 1e-5

  # Fixed-free column with a safety factor and a buckling curve PNG
  structan column buckling --length 3 --material steel --inertia 8.33e-6 \
    --end fixed_free --safety-factor 2 --plot buckling.png`,
	RunE: runColumnBuckling,
}

func init() {
	columnCmd.AddCommand(columnBucklingCmd)

	columnBucklingCmd.Flags().Float64VarP(&colLength, "length", "L", 0, "Column length (m)")
	columnBucklingCmd.Flags().Float64VarP(&colModulus, "modulus", "E", 0, "Elastic modulus (Pa)")
	columnBucklingCmd.Flags().Float64VarP(&colInertia, "inertia", "I", 0, "Second moment of area (m^4)")
	columnBucklingCmd.Flags().StringVarP(&colMaterial, "material", "m", "",
		"Material preset supplying the modulus ("+strings.Join(material.Names(), ", ")+")")
	columnBucklingCmd.Flags().Float64VarP(&colArea, "area", "A", 0, "Cross-sectional area (m^2); estimated as √I when omitted")

	columnBucklingCmd.Flags().StringVarP(&colEndCondition, "end", "e", "pinned",
		"End condition (pinned, fixed, fixed_free, fixed_pinned)")
	columnBucklingCmd.Flags().Float64VarP(&colSafetyFactor, "safety-factor", "f", 1.0, "Safety factor applied to the critical load")
	columnBucklingCmd.Flags().StringVar(&colPlotFile, "plot", "", "Export a buckling-curve PNG to this file")

	columnBucklingCmd.MarkFlagRequired("length")
}

func runColumnBuckling(cmd *cobra.Command, args []string) error {
	modulus := colModulus
	if colMaterial != "" && !cmd.Flags().Changed("modulus") {
		m, err := material.ByName(colMaterial)
		if err != nil {
			return err
		}
		modulus = m.ElasticModulus
	}

	c := column.Column{
		Length:         colLength,
		ElasticModulus: modulus,
		SecondMoment:   colInertia,
		EndCondition:   column.EndCondition(colEndCondition),
		SafetyFactor:   colSafetyFactor,
		Area:           colArea,
	}

	res, err := c.EulerBuckling()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          EULER COLUMN BUCKLING ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Length L:\t%.4g m\n", c.Length)
	fmt.Fprintf(w, "  Elastic modulus E:\t%.4g Pa\n", c.ElasticModulus)
	fmt.Fprintf(w, "  Second moment I:\t%.4g m^4\n", c.SecondMoment)
	fmt.Fprintf(w, "  End condition:\t%s (K = %.1f)\n", c.EndCondition, res.KFactor)
	fmt.Fprintf(w, "  Effective length KL:\t%.4g m\n", res.EffectiveLength)
	fmt.Fprintf(w, "  Radius of gyration r:\t%.4g m\n", res.RadiusOfGyration)
	fmt.Fprintf(w, "  Slenderness ratio KL/r:\t%.1f\n", res.SlendernessRatio)
	fmt.Fprintf(w, "  Critical stress:\t%.4g Pa\n", res.CriticalStress)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("BUCKLING LOADS", []string{
		fmt.Sprintf("Critical load P_cr = %.6g N", res.CriticalLoad),
		fmt.Sprintf("Design load (SF %.2g) = %.6g N", colSafetyFactor, res.DesignLoad),
	}))
	fmt.Println()
	fmt.Printf("  Recommendation: %s\n", res.Recommendation)
	fmt.Println()

	if colPlotFile != "" {
		if err := diagram.ExportBucklingCurve(c, colPlotFile); err != nil {
			return fmt.Errorf("exporting buckling curve: %w", err)
		}
		fmt.Printf("  Buckling curve written: %s\n\n", colPlotFile)
	}

	return nil
}
