package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// GeometricNonlinear covers large displacements and P-delta effects.
func GeometricNonlinear(args ...any) error {
	return analysis.NotSupported("nonlinear_theory", "geometric_nonlinear")
}

// MaterialNonlinear covers plasticity and other nonlinear constitutive laws.
func MaterialNonlinear(args ...any) error {
	return analysis.NotSupported("nonlinear_theory", "material_nonlinear")
}

// ContactNonlinear covers changing contact conditions between bodies.
func ContactNonlinear(args ...any) error {
	return analysis.NotSupported("nonlinear_theory", "contact_nonlinear")
}
