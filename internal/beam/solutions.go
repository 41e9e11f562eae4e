package beam

// Closed-form solutions for each implemented support/load combination.
// Point and moment loads are piecewise in the load position a; the left
// branch is closed (x <= a) except where noted.

// simplySupportedPoint: point load P at distance a from the left support.
func (beam Beam) simplySupportedPoint(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	P, a := load.Magnitude, load.Position
	b := L - a

	// Support reactions
	r1 := P * b / L
	r2 := P * a / L

	for i, x := range f.X {
		if x <= a {
			f.Deflection[i] = P * b * x * (L*L - b*b - x*x) / (6 * E * I * L)
			f.Moment[i] = r1 * x
		} else {
			f.Deflection[i] = P * a * (L - x) * (2*L*x - x*x - a*a) / (6 * E * I * L)
			f.Moment[i] = r1*x - P*(x-a)
		}

		// Shear jumps by P at the load point; report exactly zero there.
		switch {
		case x < a:
			f.Shear[i] = r1
		case x > a:
			f.Shear[i] = -r2
		default:
			f.Shear[i] = 0
		}
	}
}

// simplySupportedDistributed: uniform load w over the full span.
func (beam Beam) simplySupportedDistributed(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	w := load.Magnitude

	for i, x := range f.X {
		f.Deflection[i] = w * x * (L*L*L - 2*L*x*x + x*x*x) / (24 * E * I)
		f.Moment[i] = w * x * (L - x) / 2
		f.Shear[i] = w*L/2 - w*x
	}
}

// simplySupportedMoment: concentrated couple M at distance a.
func (beam Beam) simplySupportedMoment(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	M, a := load.Magnitude, load.Position

	// Moment carried to each support
	m1 := M * (L - a) / L
	m2 := M * a / L

	for i, x := range f.X {
		if x <= a {
			f.Deflection[i] = m1 * x * (L*L - x*x) / (6 * E * I * L)
			f.Moment[i] = m1 * x / L
		} else {
			f.Deflection[i] = m2 * (L - x) * (L*L - (L-x)*(L-x)) / (6 * E * I * L)
			f.Moment[i] = m2 * (L - x) / L
		}
		// Pure moment loading carries no shear.
		f.Shear[i] = 0
	}
}

// cantileverPoint: point load P at distance a from the fixed end.
func (beam Beam) cantileverPoint(f *Field, load Load) {
	E, I := beam.ElasticModulus, beam.SecondMoment
	P, a := load.Magnitude, load.Position

	for i, x := range f.X {
		if x <= a {
			f.Deflection[i] = P * x * x * (3*a - x) / (6 * E * I)
			f.Moment[i] = -P * (a - x)
			f.Shear[i] = -P
		} else {
			// Beyond the load the beam is unloaded and deflects linearly.
			f.Deflection[i] = P * a * a * (3*x - a) / (6 * E * I)
			f.Moment[i] = 0
			f.Shear[i] = 0
		}
	}
}

// cantileverDistributed: uniform load w over the full span.
func (beam Beam) cantileverDistributed(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	w := load.Magnitude

	for i, x := range f.X {
		f.Deflection[i] = w * x * x * (6*L*L - 4*L*x + x*x) / (24 * E * I)
		f.Moment[i] = -w * (L - x) * (L - x) / 2
		f.Shear[i] = -w * (L - x)
	}
}

// cantileverMoment: concentrated couple M at distance a from the fixed end.
func (beam Beam) cantileverMoment(f *Field, load Load) {
	E, I := beam.ElasticModulus, beam.SecondMoment
	M, a := load.Magnitude, load.Position

	for i, x := range f.X {
		if x <= a {
			f.Deflection[i] = M * x * x / (2 * E * I)
			f.Moment[i] = -M
		} else {
			f.Deflection[i] = M * x * (2*a - x) / (2 * E * I)
			f.Moment[i] = 0
		}
		f.Shear[i] = 0
	}
}

// fixedFixedPoint: point load P at distance a, both ends fixed.
func (beam Beam) fixedFixedPoint(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	P, a := load.Magnitude, load.Position
	b := L - a

	// Left-end reaction force and fixing moment
	r1 := P * b * b * (3*a + b) / (L * L * L)
	m1 := P * a * b * b / (L * L)

	for i, x := range f.X {
		if x <= a {
			f.Deflection[i] = (r1*x*x*x/6 - m1*x*x/2) / (E * I)
			f.Moment[i] = r1*x - m1
			f.Shear[i] = r1
		} else {
			f.Deflection[i] = (r1*x*x*x/6 - m1*x*x/2 - P*(x-a)*(x-a)*(x-a)/6) / (E * I)
			f.Moment[i] = r1*x - m1 - P*(x-a)
			f.Shear[i] = r1 - P
		}
	}
}

// fixedFixedDistributed: uniform load w, both ends fixed.
func (beam Beam) fixedFixedDistributed(f *Field, load Load) {
	L, E, I := beam.Length, beam.ElasticModulus, beam.SecondMoment
	w := load.Magnitude

	for i, x := range f.X {
		f.Deflection[i] = w * x * x * (L - x) * (L - x) / (24 * E * I)
		f.Moment[i] = w*L*L/12 - w*x*(L-x)/2
		f.Shear[i] = w*L/2 - w*x
	}
}
