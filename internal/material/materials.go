// Package material provides elastic moduli for common structural
// materials, used as named presets by the CLI.
package material

import (
	"sort"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

// Material holds nominal elastic properties. SI units (Pa).
type Material struct {
	Name           string
	ElasticModulus float64 // E (Pa)
	YieldStrength  float64 // f_y (Pa), 0 where not meaningful
}

// Typical values for preliminary sizing. Project-specific grades should
// be entered directly via the modulus flag.
var presets = map[string]Material{
	"steel":    {Name: "steel", ElasticModulus: 200e9, YieldStrength: 250e6},
	"aluminum": {Name: "aluminum", ElasticModulus: 69e9, YieldStrength: 95e6},
	"concrete": {Name: "concrete", ElasticModulus: 30e9},
	"timber":   {Name: "timber", ElasticModulus: 11e9},
}

// ByName returns the preset for the given material name.
func ByName(name string) (Material, error) {
	m, ok := presets[name]
	if !ok {
		return Material{}, analysis.InvalidParameter("material", "unknown material "+name)
	}
	return m, nil
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
