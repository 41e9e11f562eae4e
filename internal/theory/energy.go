package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// CastiglianosTheorem derives deflections from partial derivatives of
// strain energy.
func CastiglianosTheorem(args ...any) error {
	return analysis.NotSupported("energy_method", "castiglianos_theorem")
}

// MinimumPotentialEnergy finds equilibrium as a stationary point of the
// total potential.
func MinimumPotentialEnergy(args ...any) error {
	return analysis.NotSupported("energy_method", "minimum_potential_energy")
}

// RayleighRitz approximates solutions with assumed displacement shapes.
func RayleighRitz(args ...any) error {
	return analysis.NotSupported("energy_method", "rayleigh_ritz")
}
