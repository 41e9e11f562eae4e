package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// PlaneStress covers thin members loaded in their plane.
func PlaneStress(args ...any) error {
	return analysis.NotSupported("plane_theory", "plane_stress")
}

// PlaneStrain covers long prismatic bodies with constrained axial strain.
func PlaneStrain(args ...any) error {
	return analysis.NotSupported("plane_theory", "plane_strain")
}
