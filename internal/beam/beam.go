// Package beam implements closed-form Euler-Bernoulli beam bending
// analysis for combinations of support condition and load type.
//
// Key assumptions: small deflections, plane sections remain plane, no
// shear deformation, linear elastic material. SI units throughout
// (m, Pa, N, N/m, N·m); no unit conversion is performed.
package beam

import (
	"math"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

// SupportCondition identifies the beam boundary condition.
type SupportCondition string

const (
	SimplySupported SupportCondition = "simply_supported"
	Cantilever      SupportCondition = "cantilever"
	FixedFixed      SupportCondition = "fixed_fixed"
)

// LoadKind identifies the type of applied loading.
type LoadKind string

const (
	PointLoad       LoadKind = "point"       // concentrated force (N)
	DistributedLoad LoadKind = "distributed" // uniform intensity (N/m)
	MomentLoad      LoadKind = "moment"      // concentrated couple (N·m)
)

// DefaultStations is the station count used when Beam.Stations is zero.
const DefaultStations = 100

// Beam describes the member being analyzed.
type Beam struct {
	Length         float64          // L - span (m)
	ElasticModulus float64          // E (Pa)
	SecondMoment   float64          // I - second moment of area (m^4)
	Support        SupportCondition // boundary condition
	Stations       int              // number of evaluation stations (0 = DefaultStations)
}

// NewBeam creates a beam with the default station count.
func NewBeam(length, elasticModulus, secondMoment float64, support SupportCondition) Beam {
	return Beam{
		Length:         length,
		ElasticModulus: elasticModulus,
		SecondMoment:   secondMoment,
		Support:        support,
		Stations:       DefaultStations,
	}
}

// Load describes the applied loading. Point and moment loads require a
// position; use the constructors so the solver can tell a supplied
// position from the zero value.
type Load struct {
	Kind      LoadKind
	Magnitude float64 // N for point, N/m for distributed, N·m for moment
	Position  float64 // a - distance from the left end (m)

	hasPosition bool
}

// NewPointLoad creates a concentrated force at position a.
func NewPointLoad(magnitude, position float64) Load {
	return Load{Kind: PointLoad, Magnitude: magnitude, Position: position, hasPosition: true}
}

// NewDistributedLoad creates a uniformly distributed load over the full span.
func NewDistributedLoad(magnitude float64) Load {
	return Load{Kind: DistributedLoad, Magnitude: magnitude}
}

// NewMomentLoad creates a concentrated couple at position a.
func NewMomentLoad(magnitude, position float64) Load {
	return Load{Kind: MomentLoad, Magnitude: magnitude, Position: position, hasPosition: true}
}

// Field holds the sampled solution. The four slices are parallel and
// share the station count requested on the beam.
type Field struct {
	X          []float64 // station coordinates, 0..L
	Deflection []float64 // m
	Moment     []float64 // N·m
	Shear      []float64 // N

	MaxDeflection float64 // max |deflection| over all stations
	MaxMoment     float64 // max |moment| over all stations
}

// Evaluate computes deflection, bending moment and shear at uniformly
// spaced stations along the beam.
//
// The load position is not range-checked against the span: a position
// outside [0, L] is accepted and evaluated as-is, matching the
// closed-form expressions. The fixed-fixed support with an applied
// moment has no implemented solution and returns NotSupportedError.
func (b Beam) Evaluate(load Load) (*Field, error) {
	if b.Length <= 0 || b.ElasticModulus <= 0 || b.SecondMoment <= 0 {
		return nil, analysis.InvalidParameter("beam", "length, elastic modulus and second moment must be positive")
	}
	if load.Magnitude == 0 {
		return nil, analysis.InvalidParameter("load.magnitude", "load magnitude cannot be zero")
	}
	if (load.Kind == PointLoad || load.Kind == MomentLoad) && !load.hasPosition {
		return nil, analysis.InvalidParameter("load.position", string(load.Kind)+" load requires a position")
	}

	n := b.Stations
	if n == 0 {
		n = DefaultStations
	}
	if n < 2 {
		return nil, analysis.InvalidParameter("beam.stations", "at least 2 stations are required")
	}

	f := &Field{
		X:          linspace(0, b.Length, n),
		Deflection: make([]float64, n),
		Moment:     make([]float64, n),
		Shear:      make([]float64, n),
	}

	solve, err := b.solution(load.Kind)
	if err != nil {
		return nil, err
	}
	solve(f, load)

	f.MaxDeflection = maxAbs(f.Deflection)
	f.MaxMoment = maxAbs(f.Moment)
	return f, nil
}

// solution selects the closed-form sub-solver for the support condition
// and load kind.
func (b Beam) solution(kind LoadKind) (func(*Field, Load), error) {
	switch b.Support {
	case SimplySupported:
		switch kind {
		case PointLoad:
			return b.simplySupportedPoint, nil
		case DistributedLoad:
			return b.simplySupportedDistributed, nil
		case MomentLoad:
			return b.simplySupportedMoment, nil
		}
	case Cantilever:
		switch kind {
		case PointLoad:
			return b.cantileverPoint, nil
		case DistributedLoad:
			return b.cantileverDistributed, nil
		case MomentLoad:
			return b.cantileverMoment, nil
		}
	case FixedFixed:
		switch kind {
		case PointLoad:
			return b.fixedFixedPoint, nil
		case DistributedLoad:
			return b.fixedFixedDistributed, nil
		case MomentLoad:
			// No closed-form branch exists in this library for a couple on a
			// fixed-fixed beam; signal it rather than returning zero fields.
			return nil, analysis.NotSupported("euler_bernoulli", "fixed_fixed support with moment load")
		}
	default:
		return nil, analysis.InvalidParameter("beam.support", "unknown support condition "+string(b.Support))
	}
	return nil, analysis.InvalidParameter("load.kind", "unknown load kind "+string(kind))
}

// linspace returns n evenly spaced values from start to stop inclusive.
func linspace(start, stop float64, n int) []float64 {
	x := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range x {
		x[i] = start + float64(i)*step
	}
	x[n-1] = stop
	return x
}

func maxAbs(vals []float64) float64 {
	m := 0.0
	for _, v := range vals {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}
