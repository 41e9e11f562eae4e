package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osama-ata/structural-analysis/internal/diagram"
	"github.com/osama-ata/structural-analysis/internal/section"
)

var (
	secShape    string
	secWidth    float64
	secDepth    float64
	secDiameter float64
	secFlangeW  float64
	secFlangeT  float64
	secWebT     float64
)

var sectionPropertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "Compute area, second moment and radius of gyration",
	Long: `Compute geometric properties of a cross-section shape.

Shapes and their dimensions (all meters):
  rect    --width, --depth
  circle  --diameter
  ishape  --depth, --flange-width, --flange-thickness, --web-thickness

Examples:
  structan section properties --shape rect --width 0.2 --depth 0.4
  structan section properties --shape circle --diameter 0.3
  structan section properties --shape ishape --depth 0.4 \
    --flange-width 0.2 --flange-thickness 0.015 --web-thickness 0.01`,
	RunE: runSectionProperties,
}

func init() {
	sectionCmd.AddCommand(sectionPropertiesCmd)

	sectionPropertiesCmd.Flags().StringVarP(&secShape, "shape", "s", "rect", "Shape (rect, circle, ishape)")
	sectionPropertiesCmd.Flags().Float64VarP(&secWidth, "width", "b", 0, "Width (m)")
	sectionPropertiesCmd.Flags().Float64VarP(&secDepth, "depth", "d", 0, "Depth (m)")
	sectionPropertiesCmd.Flags().Float64VarP(&secDiameter, "diameter", "D", 0, "Diameter (m)")
	sectionPropertiesCmd.Flags().Float64Var(&secFlangeW, "flange-width", 0, "Flange width (m)")
	sectionPropertiesCmd.Flags().Float64Var(&secFlangeT, "flange-thickness", 0, "Flange thickness (m)")
	sectionPropertiesCmd.Flags().Float64Var(&secWebT, "web-thickness", 0, "Web thickness (m)")
}

func runSectionProperties(cmd *cobra.Command, args []string) error {
	var shape section.Shape
	switch secShape {
	case "rect":
		shape = section.Rectangle{Width: secWidth, Depth: secDepth}
	case "circle":
		shape = section.Circle{Diameter: secDiameter}
	case "ishape":
		shape = section.IShape{
			Depth:           secDepth,
			FlangeWidth:     secFlangeW,
			FlangeThickness: secFlangeT,
			WebThickness:    secWebT,
		}
	default:
		return fmt.Errorf("unknown shape %q", secShape)
	}

	props, err := section.Calculate(shape)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SECTION PROPERTIES")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Shape:\t%s\n", shape.Name())
	fmt.Fprintf(w, "  Area A:\t%.6g m^2\n", props.Area)
	fmt.Fprintf(w, "  Second moment I:\t%.6g m^4\n", props.SecondMoment)
	fmt.Fprintf(w, "  Radius of gyration r:\t%.6g m\n", props.RadiusOfGyration)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("FOR DOWNSTREAM COMMANDS", []string{
		fmt.Sprintf("beam analyze   --inertia %.6g", props.SecondMoment),
		fmt.Sprintf("column buckling --inertia %.6g --area %.6g", props.SecondMoment, props.Area),
	}))
	fmt.Println()

	return nil
}
