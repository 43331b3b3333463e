package flightdyn

import (
	"math"
	"testing"
)

func cruiseState() (State, Control) {
	x := make(State, StateDim)
	x[StateU] = 100.0
	x[StateW] = 5.0
	x[StateQ] = 0.1
	x[StateTheta] = 0.05
	x[StateZ] = -1000.0

	u := make(Control, ControlDim)
	u[ControlElevator] = -0.05
	u[ControlThrottle] = 0.5
	return x, u
}

func TestDeriveShape(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	dx := ac.Derive(x, u, 0)
	if len(dx) != StateDim {
		t.Fatalf("expected %d derivative channels, got %d", StateDim, len(dx))
	}
	if !dx.IsValid() {
		t.Fatalf("derivative contains NaN/Inf: %v", dx)
	}
}

// Derive must depend only on the element values, not on the slice the
// caller happens to hold them in.
func TestDeriveContainerInvariance(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	ref := ac.Derive(x, u, 0)

	backing := make([]float64, StateDim+ControlDim)
	copy(backing[:StateDim], x)
	copy(backing[StateDim:], u)
	alias := ac.Derive(State(backing[:StateDim]), Control(backing[StateDim:]), 0)

	for i := range ref {
		diff := math.Abs(alias[i] - ref[i])
		scale := math.Max(math.Abs(ref[i]), 1)
		if diff/scale > 1e-10 {
			t.Errorf("channel %d: %g != %g", i, alias[i], ref[i])
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	a := ac.Derive(x.Clone(), u.Clone(), 0)
	b := ac.Derive(x.Clone(), u.Clone(), 0)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("channel %d: repeat evaluation gave %g then %g", i, a[i], b[i])
		}
	}
}

// A symmetric state with zero lateral channels must produce exactly
// zero lateral accelerations.
func TestSymmetricFlightStaysSymmetric(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	dx := ac.Derive(x, u, 0)
	for _, i := range []int{StateV, StateP, StateR, StatePhi, StatePsi, StateY} {
		if dx[i] != 0 {
			t.Errorf("lateral channel %d: expected 0, got %g", i, dx[i])
		}
	}
}

// At rest the only significant force is gravity.
func TestFreeFallAcceleration(t *testing.T) {
	ac := NewCessna172()
	x := make(State, StateDim)
	u := make(Control, ControlDim)

	dx := ac.Derive(x, u, 0)
	if math.Abs(dx[StateW]-9.80665) > 1e-3 {
		t.Errorf("expected wdot near g, got %f", dx[StateW])
	}
}

// Dynamics must be independent of horizontal position: flat earth,
// altitude-only atmosphere.
func TestHorizontalPositionIndependence(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	ref := ac.Derive(x, u, 0)

	moved := x.Clone()
	moved[StateX] = 12345.0
	moved[StateY] = -9876.0
	got := ac.Derive(moved, u, 0)

	for i := range ref {
		if got[i] != ref[i] {
			t.Errorf("channel %d changed with horizontal position: %g != %g", i, got[i], ref[i])
		}
	}
}

func TestThrustDensityScaling(t *testing.T) {
	ac := NewCessna172()
	x, u := cruiseState()

	uIdle := u.Clone()
	uIdle[ControlThrottle] = 0
	uFull := u.Clone()
	uFull[ControlThrottle] = 1

	// The sea-level placeholder produces 2000 N at rho = 1.225.
	x[StateZ] = 0
	diff := ac.Derive(x, uFull, 0)[StateU] - ac.Derive(x, uIdle, 0)[StateU]
	if math.Abs(diff-2000.0/ac.Mass) > 1e-3 {
		t.Errorf("expected full-throttle udot gain near %f, got %f", 2000.0/ac.Mass, diff)
	}

	// At altitude the thrust scales down with density.
	x[StateZ] = -5000
	diffAlt := ac.Derive(x, uFull, 0)[StateU] - ac.Derive(x, uIdle, 0)[StateU]
	if diffAlt >= diff {
		t.Errorf("thrust should fall with density: %f >= %f", diffAlt, diff)
	}
}

func TestAirspeedFloor(t *testing.T) {
	ac := NewCessna172()
	x := make(State, StateDim)
	x[StateU] = 1e-6
	u := make(Control, ControlDim)

	dx := ac.Derive(x, u, 0)
	if !dx.IsValid() {
		t.Fatalf("near-zero airspeed must not blow up: %v", dx)
	}
}
