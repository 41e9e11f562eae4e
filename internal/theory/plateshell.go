package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// KirchhoffThin is classical thin-plate bending theory.
func KirchhoffThin(args ...any) error {
	return analysis.NotSupported("plate_shell_theory", "kirchhoff_thin")
}

// MindlinReissnerThick adds transverse shear for moderately thick plates.
func MindlinReissnerThick(args ...any) error {
	return analysis.NotSupported("plate_shell_theory", "mindlin_reissner_thick")
}

// Membrane covers in-plane-only shell behavior.
func Membrane(args ...any) error {
	return analysis.NotSupported("plate_shell_theory", "membrane")
}
