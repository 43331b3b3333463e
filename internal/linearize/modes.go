package linearize

import (
	"math"
	"math/cmplx"
	"sort"
)

// Mode is one eigenvalue of a stability subsystem with its
// second-order descriptors. Immutable once computed.
type Mode struct {
	Eigenvalue complex128
	Wn         float64 // natural frequency [rad/s]
	Zeta       float64 // damping ratio
	Name       string  // physical classification, "" when unclassified
}

// NewMode derives natural frequency and damping ratio from an
// eigenvalue n + iω: wn = sqrt(n² + ω²), zeta = −n/wn. A zero
// eigenvalue gets zeta = 0 by convention.
func NewMode(ev complex128) Mode {
	wn := cmplx.Abs(ev)
	zeta := 0.0
	if wn != 0 {
		zeta = -real(ev) / wn
	}
	return Mode{Eigenvalue: ev, Wn: wn, Zeta: zeta}
}

// Modes converts each eigenvalue, preserving order.
func Modes(evs []complex128) []Mode {
	out := make([]Mode, len(evs))
	for i, ev := range evs {
		out[i] = NewMode(ev)
	}
	return out
}

// ClassifyLongitudinal names the four longitudinal modes by frequency:
// sorted ascending by wn, the slow pair is the phugoid and the fast
// pair the short period. Classification is post-hoc; the eigenvalues
// themselves come out of the decomposition unordered.
func ClassifyLongitudinal(evs []complex128) []Mode {
	modes := Modes(evs)
	sort.SliceStable(modes, func(i, j int) bool { return modes[i].Wn < modes[j].Wn })
	for i := range modes {
		if i < 2 {
			modes[i].Name = "phugoid"
		} else {
			modes[i].Name = "short period"
		}
	}
	return modes
}

// ClassifyLateral names the four lateral modes by realness and
// magnitude: the complex-conjugate pair is the dutch roll; of the real
// roots, the more negative is the roll mode and the remaining one the
// spiral.
func ClassifyLateral(evs []complex128) []Mode {
	modes := Modes(evs)

	var realModes []*Mode
	for i := range modes {
		if imag(modes[i].Eigenvalue) == 0 {
			realModes = append(realModes, &modes[i])
		} else {
			modes[i].Name = "dutch roll"
		}
	}

	sort.Slice(realModes, func(i, j int) bool {
		return real(realModes[i].Eigenvalue) < real(realModes[j].Eigenvalue)
	})
	for i, m := range realModes {
		switch {
		case len(realModes) == 2 && i == 0:
			m.Name = "roll"
		case len(realModes) == 2 && i == 1:
			m.Name = "spiral"
		default:
			// Degenerate split (0 or 4 real roots); fall back to a
			// magnitude label.
			if math.Abs(real(m.Eigenvalue)) > 1 {
				m.Name = "roll"
			} else {
				m.Name = "spiral"
			}
		}
	}
	return modes
}
