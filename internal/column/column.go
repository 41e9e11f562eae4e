// Package column implements elastic column stability checks, currently
// Euler's critical-load calculation for ideal columns.
package column

import (
	"math"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

// EndCondition identifies the column end restraints.
type EndCondition string

const (
	Pinned      EndCondition = "pinned"       // both ends pinned
	Fixed       EndCondition = "fixed"        // both ends fixed
	FixedFree   EndCondition = "fixed_free"   // one end fixed, one free
	FixedPinned EndCondition = "fixed_pinned" // one end fixed, one pinned
)

// kFactors maps end conditions to effective-length factors.
var kFactors = map[EndCondition]float64{
	Pinned:      1.0,
	Fixed:       0.5,
	FixedFree:   2.0,
	FixedPinned: 0.7,
}

// Column describes the compression member being checked.
type Column struct {
	Length         float64      // L (m)
	ElasticModulus float64      // E (Pa)
	SecondMoment   float64      // I (m^4)
	EndCondition   EndCondition // end restraints
	SafetyFactor   float64      // divisor applied to the critical load (0 = 1.0)

	// Area, when positive, is the true cross-sectional area (m^2). When
	// zero the calculator falls back to the sqrt(I) estimate.
	Area float64
}

// NewColumn creates a column with a unit safety factor.
func NewColumn(length, elasticModulus, secondMoment float64, end EndCondition) Column {
	return Column{
		Length:         length,
		ElasticModulus: elasticModulus,
		SecondMoment:   secondMoment,
		EndCondition:   end,
		SafetyFactor:   1.0,
	}
}

// BucklingResult holds the Euler buckling outputs.
type BucklingResult struct {
	CriticalLoad     float64 // P_cr (N)
	DesignLoad       float64 // P_cr / safety factor (N)
	CriticalStress   float64 // P_cr / area (Pa)
	EffectiveLength  float64 // K·L (m)
	KFactor          float64
	SlendernessRatio float64
	RadiusOfGyration float64 // m
	Recommendation   string
}

// EulerBuckling computes the elastic critical load P_cr = pi^2·E·I/(KL)^2
// along with the derived design quantities.
//
// Assumes a perfect, linearly elastic column with small deflections and
// stress below yield. When no area is supplied the cross-sectional area
// is estimated as sqrt(I), a rough placeholder that makes the stress and
// slenderness outputs approximate.
func (c Column) EulerBuckling() (*BucklingResult, error) {
	if c.Length <= 0 {
		return nil, analysis.InvalidParameter("column.length", "length must be positive")
	}
	if c.ElasticModulus <= 0 {
		return nil, analysis.InvalidParameter("column.elastic_modulus", "elastic modulus must be positive")
	}
	if c.SecondMoment <= 0 {
		return nil, analysis.InvalidParameter("column.second_moment", "second moment of area must be positive")
	}
	sf := c.SafetyFactor
	if sf == 0 {
		sf = 1.0
	}
	if sf <= 0 {
		return nil, analysis.InvalidParameter("column.safety_factor", "safety factor must be positive")
	}

	k, ok := kFactors[c.EndCondition]
	if !ok {
		return nil, analysis.InvalidParameter("column.end_condition", "unknown end condition "+string(c.EndCondition))
	}

	effectiveLength := k * c.Length
	criticalLoad := math.Pi * math.Pi * c.ElasticModulus * c.SecondMoment / (effectiveLength * effectiveLength)

	area := c.Area
	if area <= 0 {
		area = math.Sqrt(c.SecondMoment)
	}
	radiusOfGyration := math.Sqrt(c.SecondMoment / area)
	slenderness := effectiveLength / radiusOfGyration

	return &BucklingResult{
		CriticalLoad:     criticalLoad,
		DesignLoad:       criticalLoad / sf,
		CriticalStress:   criticalLoad / area,
		EffectiveLength:  effectiveLength,
		KFactor:          k,
		SlendernessRatio: slenderness,
		RadiusOfGyration: radiusOfGyration,
		Recommendation:   recommendation(slenderness),
	}, nil
}

// recommendation classifies the column by slenderness ratio. Band edges
// belong to the higher band.
func recommendation(slenderness float64) string {
	switch {
	case slenderness < 50:
		return "Short column - check crushing/yielding instead of buckling"
	case slenderness < 100:
		return "Intermediate column - consider inelastic buckling"
	case slenderness < 200:
		return "Long column - Euler buckling applicable"
	default:
		return "Very slender - verify assumptions and consider imperfections"
	}
}
