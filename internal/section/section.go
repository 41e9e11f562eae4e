// Package section computes geometric properties of common cross-section
// shapes: area, second moment of area about the strong axis, and radius
// of gyration. These feed the beam and column calculators, which take
// E·I rather than dimensions.
package section

import (
	"math"

	"github.com/osama-ata/structural-analysis/internal/analysis"
)

// Shape is a parametric cross-section. Dimensions are in meters.
type Shape interface {
	Name() string
	Area() float64         // m^2
	SecondMoment() float64 // m^4, about the horizontal centroidal axis
	Validate() error
}

// Properties holds the derived quantities for a shape.
type Properties struct {
	Area             float64 // m^2
	SecondMoment     float64 // m^4
	RadiusOfGyration float64 // m
}

// Calculate validates the shape and returns its properties.
func Calculate(s Shape) (*Properties, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	a := s.Area()
	i := s.SecondMoment()
	return &Properties{
		Area:             a,
		SecondMoment:     i,
		RadiusOfGyration: math.Sqrt(i / a),
	}, nil
}

// Rectangle is a solid rectangular section, width b by depth h.
type Rectangle struct {
	Width float64 // b (m)
	Depth float64 // h (m), measured in the bending plane
}

func (r Rectangle) Name() string { return "rectangle" }

func (r Rectangle) Area() float64 { return r.Width * r.Depth }

func (r Rectangle) SecondMoment() float64 {
	return r.Width * r.Depth * r.Depth * r.Depth / 12
}

func (r Rectangle) Validate() error {
	if r.Width <= 0 || r.Depth <= 0 {
		return analysis.InvalidParameter("rectangle", "width and depth must be positive")
	}
	return nil
}

// Circle is a solid circular section.
type Circle struct {
	Diameter float64 // d (m)
}

func (c Circle) Name() string { return "circle" }

func (c Circle) Area() float64 {
	return math.Pi * c.Diameter * c.Diameter / 4
}

func (c Circle) SecondMoment() float64 {
	return math.Pi * math.Pow(c.Diameter, 4) / 64
}

func (c Circle) Validate() error {
	if c.Diameter <= 0 {
		return analysis.InvalidParameter("circle", "diameter must be positive")
	}
	return nil
}

// IShape is a doubly symmetric I-section bending about its strong axis.
type IShape struct {
	Depth           float64 // overall depth d (m)
	FlangeWidth     float64 // b_f (m)
	FlangeThickness float64 // t_f (m)
	WebThickness    float64 // t_w (m)
}

func (s IShape) Name() string { return "i-shape" }

func (s IShape) Area() float64 {
	web := s.Depth - 2*s.FlangeThickness
	return 2*s.FlangeWidth*s.FlangeThickness + web*s.WebThickness
}

func (s IShape) SecondMoment() float64 {
	// Full rectangle minus the two side voids beside the web.
	web := s.Depth - 2*s.FlangeThickness
	full := s.FlangeWidth * math.Pow(s.Depth, 3) / 12
	voids := (s.FlangeWidth - s.WebThickness) * math.Pow(web, 3) / 12
	return full - voids
}

func (s IShape) Validate() error {
	if s.Depth <= 0 || s.FlangeWidth <= 0 || s.FlangeThickness <= 0 || s.WebThickness <= 0 {
		return analysis.InvalidParameter("i-shape", "all dimensions must be positive")
	}
	if 2*s.FlangeThickness >= s.Depth {
		return analysis.InvalidParameter("i-shape", "flanges must be thinner than half the depth")
	}
	if s.WebThickness > s.FlangeWidth {
		return analysis.InvalidParameter("i-shape", "web cannot be wider than the flange")
	}
	return nil
}
