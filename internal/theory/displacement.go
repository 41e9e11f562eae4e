package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// Displacement (stiffness) methods solve for joint displacements first
// and recover member forces from them.

// SlopeDeflection relates member-end moments to joint rotations and
// translations for continuous beams and frames.
func SlopeDeflection(args ...any) error {
	return analysis.NotSupported("displacement_method", "slope_deflection")
}

// MomentDistribution is Cross's iterative moment-balancing procedure for
// indeterminate beams and frames.
func MomentDistribution(args ...any) error {
	return analysis.NotSupported("displacement_method", "moment_distribution")
}

// StiffnessMatrix assembles the global stiffness relation K·u = F.
func StiffnessMatrix(args ...any) error {
	return analysis.NotSupported("displacement_method", "stiffness_matrix")
}

// FiniteElement is the general discretized displacement formulation.
func FiniteElement(args ...any) error {
	return analysis.NotSupported("displacement_method", "finite_element")
}
