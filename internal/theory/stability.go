package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// LinearStability is eigenvalue buckling of general structures.
func LinearStability(args ...any) error {
	return analysis.NotSupported("stability_theory", "linear_stability")
}

// NonlinearStability traces post-buckling equilibrium paths.
func NonlinearStability(args ...any) error {
	return analysis.NotSupported("stability_theory", "nonlinear_stability")
}

// BifurcationTheory classifies branching of equilibrium states.
func BifurcationTheory(args ...any) error {
	return analysis.NotSupported("stability_theory", "bifurcation_theory")
}
