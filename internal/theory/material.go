package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// LinearElastic is Hooke's-law constitutive behavior.
func LinearElastic(args ...any) error {
	return analysis.NotSupported("material_theory", "linear_elastic")
}

// ElasticPlastic covers yielding with hardening rules.
func ElasticPlastic(args ...any) error {
	return analysis.NotSupported("material_theory", "elastic_plastic")
}

// Viscoelastic covers time-dependent stress-strain response.
func Viscoelastic(args ...any) error {
	return analysis.NotSupported("material_theory", "viscoelastic")
}

// OrthotropicAnisotropic covers direction-dependent material behavior.
func OrthotropicAnisotropic(args ...any) error {
	return analysis.NotSupported("material_theory", "orthotropic_anisotropic")
}
