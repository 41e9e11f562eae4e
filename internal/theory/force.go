package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// Force (flexibility) methods treat redundant forces as unknowns.

// ConsistentDeformation enforces compatibility at released redundants.
func ConsistentDeformation(args ...any) error {
	return analysis.NotSupported("force_method", "consistent_deformation")
}

// VirtualWorkUnitLoad computes deflections with the unit-load theorem.
func VirtualWorkUnitLoad(args ...any) error {
	return analysis.NotSupported("force_method", "virtual_work_unit_load")
}

// ThreeMomentTheorem relates support moments of continuous beams.
func ThreeMomentTheorem(args ...any) error {
	return analysis.NotSupported("force_method", "three_moment_theorem")
}
