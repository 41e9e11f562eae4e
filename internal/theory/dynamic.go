package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// ModalAnalysis extracts natural frequencies and mode shapes.
func ModalAnalysis(args ...any) error {
	return analysis.NotSupported("dynamic_theory", "modal_analysis")
}

// FrequencyResponse computes steady-state response to harmonic excitation.
func FrequencyResponse(args ...any) error {
	return analysis.NotSupported("dynamic_theory", "frequency_response")
}

// TransientResponse integrates the equations of motion in time.
func TransientResponse(args ...any) error {
	return analysis.NotSupported("dynamic_theory", "transient_response")
}

// NonlinearDynamic covers time-history analysis with nonlinear behavior.
func NonlinearDynamic(args ...any) error {
	return analysis.NotSupported("dynamic_theory", "nonlinear_dynamic")
}
