package column

import "github.com/osama-ata/structural-analysis/internal/analysis"

// Placeholder column theories; calling any of them returns NotSupportedError.

// RankineGordon is an empirical blend of buckling and crushing failure,
// practical for columns of any length.
func RankineGordon(args ...any) error {
	return analysis.NotSupported("column_theory", "rankine_gordon")
}

// JohnsonParabolic covers inelastic buckling of intermediate-length
// columns in ductile materials.
func JohnsonParabolic(args ...any) error {
	return analysis.NotSupported("column_theory", "johnson_parabolic")
}

// PlasticBuckling analyzes column behavior beyond the yield point.
func PlasticBuckling(args ...any) error {
	return analysis.NotSupported("column_theory", "plastic_buckling")
}
