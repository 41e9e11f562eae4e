package theory

import "github.com/osama-ata/structural-analysis/internal/analysis"

// CompositeLaminate covers layered fiber-composite behavior.
func CompositeLaminate(args ...any) error {
	return analysis.NotSupported("specialized_theory", "composite_laminate")
}

// SmartMaterials covers piezoelectric and shape-memory behavior.
func SmartMaterials(args ...any) error {
	return analysis.NotSupported("specialized_theory", "smart_materials")
}

// MultiPhysics covers coupled thermal/fluid/structural problems.
func MultiPhysics(args ...any) error {
	return analysis.NotSupported("specialized_theory", "multi_physics")
}
