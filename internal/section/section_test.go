package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

func TestRectangleProperties(t *testing.T) {
	props, err := Calculate(Rectangle{Width: 0.2, Depth: 0.4})
	require.NoError(t, err)

	assert.InEpsilon(t, 0.08, props.Area, 1e-12)
	assert.InEpsilon(t, 0.2*math.Pow(0.4, 3)/12, props.SecondMoment, 1e-12)
	// r = h/sqrt(12) for a rectangle
	assert.InEpsilon(t, 0.4/math.Sqrt(12), props.RadiusOfGyration, 1e-12)
}

func TestCircleProperties(t *testing.T) {
	props, err := Calculate(Circle{Diameter: 0.3})
	require.NoError(t, err)

	assert.InEpsilon(t, math.Pi*0.09/4, props.Area, 1e-12)
	assert.InEpsilon(t, math.Pi*math.Pow(0.3, 4)/64, props.SecondMoment, 1e-12)
	// r = d/4 for a solid circle
	assert.InEpsilon(t, 0.075, props.RadiusOfGyration, 1e-9)
}

func TestIShapeProperties(t *testing.T) {
	s := IShape{Depth: 0.4, FlangeWidth: 0.2, FlangeThickness: 0.015, WebThickness: 0.01}

	props, err := Calculate(s)
	require.NoError(t, err)

	web := 0.4 - 2*0.015
	wantArea := 2*0.2*0.015 + web*0.01
	wantI := 0.2*math.Pow(0.4, 3)/12 - (0.2-0.01)*math.Pow(web, 3)/12

	assert.InEpsilon(t, wantArea, props.Area, 1e-12)
	assert.InEpsilon(t, wantI, props.SecondMoment, 1e-12)
	assert.InEpsilon(t, math.Sqrt(wantI/wantArea), props.RadiusOfGyration, 1e-12)
}

func TestInvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
	}{
		{"zero-width rectangle", Rectangle{Width: 0, Depth: 0.4}},
		{"negative-depth rectangle", Rectangle{Width: 0.2, Depth: -0.4}},
		{"zero-diameter circle", Circle{}},
		{"flanges thicker than depth", IShape{Depth: 0.1, FlangeWidth: 0.2, FlangeThickness: 0.06, WebThickness: 0.01}},
		{"web wider than flange", IShape{Depth: 0.4, FlangeWidth: 0.05, FlangeThickness: 0.015, WebThickness: 0.06}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := Calculate(tt.shape)
			assert.Nil(t, props)

			var ipe *analysis.InvalidParameterError
			require.ErrorAs(t, err, &ipe)
		})
	}
}
