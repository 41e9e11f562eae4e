package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

func TestEulerBucklingPinned(t *testing.T) {
	c := NewColumn(4.0, 200e9, 1e-5, Pinned)

	res, err := c.EulerBuckling()
	require.NoError(t, err)

	// P_cr = pi^2 * 200e9 * 1e-5 / 4^2
	want := math.Pi * math.Pi * 200e9 * 1e-5 / 16
	assert.InEpsilon(t, want, res.CriticalLoad, 0.001)
	assert.Equal(t, 1.0, res.KFactor)
	assert.InDelta(t, c.Length, res.EffectiveLength, 1e-10)
	assert.InDelta(t, res.CriticalLoad, res.DesignLoad, 1e-10)
}

func TestEulerBucklingEndConditions(t *testing.T) {
	tests := []struct {
		end   EndCondition
		wantK float64
	}{
		{Pinned, 1.0},
		{Fixed, 0.5},
		{FixedFree, 2.0},
		{FixedPinned, 0.7},
	}

	for _, tt := range tests {
		t.Run(string(tt.end), func(t *testing.T) {
			c := NewColumn(3.0, 200e9, 8.33e-6, tt.end)

			res, err := c.EulerBuckling()
			require.NoError(t, err)

			assert.Equal(t, tt.wantK, res.KFactor)
			assert.InDelta(t, tt.wantK*c.Length, res.EffectiveLength, 1e-12)

			want := math.Pi * math.Pi * c.ElasticModulus * c.SecondMoment /
				math.Pow(tt.wantK*c.Length, 2)
			assert.InEpsilon(t, want, res.CriticalLoad, 1e-9)
		})
	}
}

func TestEulerBucklingScaling(t *testing.T) {
	base := NewColumn(3.0, 200e9, 8.33e-6, Pinned)
	baseRes, err := base.EulerBuckling()
	require.NoError(t, err)

	// Doubling the length quarters the critical load
	long := base
	long.Length = 2 * base.Length
	longRes, err := long.EulerBuckling()
	require.NoError(t, err)
	assert.InEpsilon(t, baseRes.CriticalLoad/4, longRes.CriticalLoad, 0.01)

	// Doubling I doubles the critical load
	stiff := base
	stiff.SecondMoment = 2 * base.SecondMoment
	stiffRes, err := stiff.EulerBuckling()
	require.NoError(t, err)
	assert.InEpsilon(t, 2*baseRes.CriticalLoad, stiffRes.CriticalLoad, 0.01)
}

func TestEulerBucklingDesignLoad(t *testing.T) {
	for _, sf := range []float64{1.0, 1.5, 2.0, 3.0} {
		c := NewColumn(3.0, 200e9, 8.33e-6, Pinned)
		c.SafetyFactor = sf

		res, err := c.EulerBuckling()
		require.NoError(t, err)
		assert.InDelta(t, res.CriticalLoad/sf, res.DesignLoad, 1e-10, "sf=%v", sf)
	}
}

func TestEulerBucklingZeroSafetyFactorDefaultsToOne(t *testing.T) {
	// The zero value means "unset" and falls back to a unit safety factor;
	// only explicit negative values are rejected.
	c := Column{Length: 3.0, ElasticModulus: 200e9, SecondMoment: 8.33e-6, EndCondition: Pinned}

	res, err := c.EulerBuckling()
	require.NoError(t, err)
	assert.Equal(t, res.CriticalLoad, res.DesignLoad)
}

func TestEulerBucklingRecommendationBands(t *testing.T) {
	// With I = 1e-4 the estimated radius of gyration is I^(1/4) ≈ 0.1 m,
	// so slenderness ≈ 10·L for a pinned column.
	tests := []struct {
		length float64
		want   string
	}{
		{2.0, "Short column - check crushing/yielding instead of buckling"},
		{6.0, "Intermediate column - consider inelastic buckling"},
		{15.0, "Long column - Euler buckling applicable"},
		{25.0, "Very slender - verify assumptions and consider imperfections"},
	}

	for _, tt := range tests {
		c := NewColumn(tt.length, 200e9, 1e-4, Pinned)

		res, err := c.EulerBuckling()
		require.NoError(t, err)
		assert.Equal(t, tt.want, res.Recommendation, "L=%v (λ=%v)", tt.length, res.SlendernessRatio)
	}
}

func TestEulerBucklingEstimatedArea(t *testing.T) {
	c := NewColumn(3.0, 200e9, 1e-4, Pinned)

	res, err := c.EulerBuckling()
	require.NoError(t, err)

	// area ≈ sqrt(I), r = sqrt(I/area) = I^(1/4)
	area := math.Sqrt(c.SecondMoment)
	assert.InEpsilon(t, math.Sqrt(c.SecondMoment/area), res.RadiusOfGyration, 1e-9)
	assert.InEpsilon(t, res.CriticalLoad/area, res.CriticalStress, 1e-9)
}

func TestEulerBucklingExplicitArea(t *testing.T) {
	c := NewColumn(3.0, 200e9, 1e-5, Pinned)
	c.Area = 0.01

	res, err := c.EulerBuckling()
	require.NoError(t, err)

	assert.InEpsilon(t, math.Sqrt(c.SecondMoment/c.Area), res.RadiusOfGyration, 1e-9)
	assert.InEpsilon(t, res.CriticalLoad/c.Area, res.CriticalStress, 1e-9)
}

func TestEulerBucklingInvalidParameters(t *testing.T) {
	valid := NewColumn(3.0, 200e9, 8.33e-6, Pinned)

	tests := []struct {
		name      string
		mutate    func(*Column)
		wantParam string
	}{
		{"negative length", func(c *Column) { c.Length = -1 }, "column.length"},
		{"zero modulus", func(c *Column) { c.ElasticModulus = 0 }, "column.elastic_modulus"},
		{"negative second moment", func(c *Column) { c.SecondMoment = -1e-6 }, "column.second_moment"},
		{"negative safety factor", func(c *Column) { c.SafetyFactor = -2 }, "column.safety_factor"},
		{"unknown end condition", func(c *Column) { c.EndCondition = "roller" }, "column.end_condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)

			res, err := c.EulerBuckling()
			assert.Nil(t, res)

			var ipe *analysis.InvalidParameterError
			require.ErrorAs(t, err, &ipe)
			assert.Equal(t, tt.wantParam, ipe.Param)
		})
	}
}

func TestColumnTheoryStubs(t *testing.T) {
	stubs := map[string]func(...any) error{
		"rankine_gordon":    RankineGordon,
		"johnson_parabolic": JohnsonParabolic,
		"plastic_buckling":  PlasticBuckling,
	}

	for name, fn := range stubs {
		t.Run(name, func(t *testing.T) {
			err := fn()
			var nse *analysis.NotSupportedError
			require.ErrorAs(t, err, &nse)
			assert.Equal(t, name, nse.Method)
		})
	}
}
