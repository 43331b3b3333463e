package flightdyn

// Aircraft is a read-only parameter snapshot: geometry, mass, inertia
// and linear aerodynamic derivatives (per radian). Callers validate
// once with Validate and treat the value as immutable afterwards.
type Aircraft struct {
	Name string

	// Geometry and mass.
	S    float64 // wing area [m^2]
	B    float64 // wing span [m]
	C    float64 // mean aerodynamic chord [m]
	Mass float64 // [kg]

	// Inertia tensor [kg*m^2], Ixy = Iyz = 0 assumed.
	Ixx float64
	Iyy float64
	Izz float64
	Ixz float64

	// Longitudinal coefficients.
	CL0 float64
	CD0 float64
	Cm0 float64

	CLAlpha float64
	CLQ     float64
	CLDe    float64

	CDAlpha float64

	CmAlpha float64
	CmQ     float64
	CmDe    float64

	// Lateral derivatives.
	CyBeta float64
	ClBeta float64
	CnBeta float64
	ClP    float64
	CnR    float64
}

// NewCessna172 returns parameters for a Cessna 172 at max gross weight.
// Derivatives are the usual GA textbook values.
func NewCessna172() *Aircraft {
	return &Aircraft{
		Name: "Cessna 172",

		S:    16.2,
		B:    11.0,
		C:    1.47,
		Mass: 1111.0,

		Ixx: 1285.3,
		Iyy: 1824.9,
		Izz: 2666.9,
		Ixz: 0.0,

		CL0: 0.3,
		CD0: 0.03,
		Cm0: -0.02,

		CLAlpha: 4.58,
		CLQ:     3.8,
		CLDe:    0.35,

		CDAlpha: 0.1,

		CmAlpha: -0.9,
		CmQ:     -12.4,
		CmDe:    -1.28,

		CyBeta: -0.3,
		ClBeta: -0.1,
		CnBeta: 0.1,
		ClP:    -0.5,
		CnR:    -0.15,
	}
}

// NewNavion returns parameters for a North American Navion, the other
// staple of GA stability examples.
func NewNavion() *Aircraft {
	return &Aircraft{
		Name: "Navion",

		S:    17.1,
		B:    10.18,
		C:    1.74,
		Mass: 1247.0,

		Ixx: 1421.0,
		Iyy: 4068.0,
		Izz: 4786.0,
		Ixz: 0.0,

		CL0: 0.41,
		CD0: 0.05,
		Cm0: 0.05,

		CLAlpha: 4.44,
		CLQ:     3.8,
		CLDe:    0.355,

		CDAlpha: 0.33,

		CmAlpha: -0.683,
		CmQ:     -9.96,
		CmDe:    -0.923,

		CyBeta: -0.564,
		ClBeta: -0.074,
		CnBeta: 0.071,
		ClP:    -0.41,
		CnR:    -0.125,
	}
}

// Validate checks the strict-positivity invariants on geometry, mass
// and the inertia diagonal. Returns a *ParamError wrapping
// ErrParameterBounds on the first violation.
func (a *Aircraft) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"S", a.S},
		{"b", a.B},
		{"c", a.C},
		{"mass", a.Mass},
		{"Ixx", a.Ixx},
		{"Iyy", a.Iyy},
		{"Izz", a.Izz},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return &ParamError{Name: c.name, Value: c.value}
		}
	}
	return nil
}

func (a *Aircraft) StateDim() int   { return StateDim }
func (a *Aircraft) ControlDim() int { return ControlDim }
