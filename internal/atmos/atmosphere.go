// Package atmos implements the ISA troposphere model used by the
// flight dynamics. Altitudes are clamped to [0, 11000] m; there is no
// stratosphere model.
package atmos

import (
	"math"
	"sync"
)

// ISA sea-level constants.
const (
	T0 = 288.15  // sea-level temperature [K]
	P0 = 101325  // sea-level pressure [Pa]
	L  = 0.0065  // temperature lapse rate [K/m]
	G  = 9.80665 // gravity [m/s^2]
	R  = 287.05  // gas constant for dry air [J/(kg*K)]

	MaxAltitude = 11000.0 // tropopause cap [m]

	// Rho0 is the sea-level density implied by the constants above.
	Rho0 = P0 / (R * T0)
)

// Sample is the atmospheric state at one altitude.
type Sample struct {
	Temperature float64 // [K]
	Pressure    float64 // [Pa]
	Density     float64 // [kg/m^3]
}

// Compute evaluates the troposphere model at altitude h [m].
// h is clamped to [0, MaxAltitude], so the result is always finite.
func Compute(h float64) Sample {
	if h < 0 {
		h = 0
	} else if h > MaxAltitude {
		h = MaxAltitude
	}

	t := T0 - L*h
	p := P0 * math.Pow(1-L*h/T0, G/(R*L))
	return Sample{
		Temperature: t,
		Pressure:    p,
		Density:     p / (R * t),
	}
}

// Profile evaluates the model at each altitude, element-wise identical
// to Compute.
func Profile(hs []float64) []Sample {
	out := make([]Sample, len(hs))
	for i, h := range hs {
		out[i] = Compute(h)
	}
	return out
}

// cache memoizes Compute by exact altitude value. Trim iteration and
// finite-difference linearization hit the same handful of altitudes
// thousands of times, so a non-evicting map is enough.
var cache sync.Map // float64 -> Sample

// At returns the same result as Compute, consulting a process-wide
// memo cache first. Safe for concurrent use.
func At(h float64) Sample {
	if v, ok := cache.Load(h); ok {
		return v.(Sample)
	}
	s := Compute(h)
	cache.Store(h, s)
	return s
}
