package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// LEFM is linear-elastic fracture mechanics: stress intensity factors
// and brittle crack growth.
func LEFM(args ...any) error {
	return analysis.NotSupported("fracture_theory", "lefm")
}

// ElasticPlasticFracture covers ductile fracture (J-integral, CTOD).
func ElasticPlasticFracture(args ...any) error {
	return analysis.NotSupported("fracture_theory", "elastic_plastic_fracture")
}
