package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

// Every placeholder must identify itself and refuse to pretend it computed
// something.
func TestPlaceholdersReturnNotSupported(t *testing.T) {
	tests := []struct {
		theory string
		method string
		fn     func(...any) error
	}{
		{"displacement_method", "slope_deflection", SlopeDeflection},
		{"displacement_method", "moment_distribution", MomentDistribution},
		{"displacement_method", "stiffness_matrix", StiffnessMatrix},
		{"displacement_method", "finite_element", FiniteElement},
		{"dynamic_theory", "modal_analysis", ModalAnalysis},
		{"dynamic_theory", "frequency_response", FrequencyResponse},
		{"dynamic_theory", "transient_response", TransientResponse},
		{"dynamic_theory", "nonlinear_dynamic", NonlinearDynamic},
		{"energy_method", "castiglianos_theorem", CastiglianosTheorem},
		{"energy_method", "minimum_potential_energy", MinimumPotentialEnergy},
		{"energy_method", "rayleigh_ritz", RayleighRitz},
		{"force_method", "consistent_deformation", ConsistentDeformation},
		{"force_method", "virtual_work_unit_load", VirtualWorkUnitLoad},
		{"force_method", "three_moment_theorem", ThreeMomentTheorem},
		{"fracture_theory", "lefm", LEFM},
		{"fracture_theory", "elastic_plastic_fracture", ElasticPlasticFracture},
		{"material_theory", "linear_elastic", LinearElastic},
		{"material_theory", "elastic_plastic", ElasticPlastic},
		{"material_theory", "viscoelastic", Viscoelastic},
		{"material_theory", "orthotropic_anisotropic", OrthotropicAnisotropic},
		{"nonlinear_theory", "geometric_nonlinear", GeometricNonlinear},
		{"nonlinear_theory", "material_nonlinear", MaterialNonlinear},
		{"nonlinear_theory", "contact_nonlinear", ContactNonlinear},
		{"plane_theory", "plane_stress", PlaneStress},
		{"plane_theory", "plane_strain", PlaneStrain},
		{"plate_shell_theory", "kirchhoff_thin", KirchhoffThin},
		{"plate_shell_theory", "mindlin_reissner_thick", MindlinReissnerThick},
		{"plate_shell_theory", "membrane", Membrane},
		{"specialized_theory", "composite_laminate", CompositeLaminate},
		{"specialized_theory", "smart_materials", SmartMaterials},
		{"specialized_theory", "multi_physics", MultiPhysics},
		{"stability_theory", "linear_stability", LinearStability},
		{"stability_theory", "nonlinear_stability", NonlinearStability},
		{"stability_theory", "bifurcation_theory", BifurcationTheory},
	}

	for _, tt := range tests {
		t.Run(tt.theory+"/"+tt.method, func(t *testing.T) {
			// Arbitrary parameters must be accepted.
			err := tt.fn("anything", 42, 3.14)

			var nse *analysis.NotSupportedError
			require.ErrorAs(t, err, &nse)
			assert.Equal(t, tt.theory, nse.Theory)
			assert.Equal(t, tt.method, nse.Method)
		})
	}
}
