package beam

import "github.com/osama-ata/structural-analysis/internal/analysis"

// Placeholder beam theories. Each is a named extension point with no
// implemented algorithm yet; calling one returns NotSupportedError.

// Timoshenko accounts for shear deformation and rotary inertia, which
// matters for thick beams and dynamic analysis.
func Timoshenko(args ...any) error {
	return analysis.NotSupported("beam_theory", "timoshenko")
}

// ReddyBickford is a higher-order shear theory for composite and
// laminated beams.
func ReddyBickford(args ...any) error {
	return analysis.NotSupported("beam_theory", "reddy_bickford")
}

// Levinson is a higher-order theory with refined shear behavior for
// multilayered structures.
func Levinson(args ...any) error {
	return analysis.NotSupported("beam_theory", "levinson")
}

// NonlinearBeam covers large-deformation bending with geometric or
// material nonlinearity.
func NonlinearBeam(args ...any) error {
	return analysis.NotSupported("beam_theory", "nonlinear_beam")
}
