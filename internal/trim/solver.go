// Package trim solves for longitudinal equilibrium: the
// alpha/elevator/throttle combination with zero udot, wdot and qdot at
// a given airspeed, altitude and flight-path angle. Only symmetric,
// wings-level, zero-sideslip flight is trimmed.
package trim

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/flightlab/trimlab/internal/flightdyn"
)

// ErrConvergence indicates the root finder failed on both guesses.
var ErrConvergence = errors.New("trim: solver failed to converge")

// ConvergenceError carries the solver diagnostic for the caller to
// translate into a user-facing message.
type ConvergenceError struct {
	Message  string
	Residual float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("trim solver failed to converge: %s (residual %.3e)", e.Message, e.Residual)
}

func (e *ConvergenceError) Unwrap() error {
	return ErrConvergence
}

// State is the solved equilibrium point together with the flight
// condition it was solved for. Immutable once returned.
type State struct {
	Alpha    float64 // [rad]
	Elevator float64 // [rad]
	Throttle float64 // [0, 1]

	U     float64 // [m/s]
	W     float64 // [m/s]
	Theta float64 // [rad]

	Velocity        float64 // [m/s]
	Altitude        float64 // [m]
	FlightPathAngle float64 // [rad]
}

// AlphaDeg returns the trim angle of attack in degrees.
func (s *State) AlphaDeg() float64 { return s.Alpha * 180 / math.Pi }

// ElevatorDeg returns the trim elevator deflection in degrees.
func (s *State) ElevatorDeg() float64 { return s.Elevator * 180 / math.Pi }

// ThetaDeg returns the trim pitch attitude in degrees.
func (s *State) ThetaDeg() float64 { return s.Theta * 180 / math.Pi }

// Solver finds trim states for one aircraft.
type Solver struct {
	aircraft *flightdyn.Aircraft
}

func NewSolver(a *flightdyn.Aircraft) *Solver {
	return &Solver{aircraft: a}
}

// Newton iteration limits. The residual tolerance is far tighter than
// the 1e-3 equilibrium check downstream so converged trims have slack.
const (
	maxIterations = 50
	residualTol   = 1e-10
	jacobianStep  = 1e-7
)

// FullState expands a candidate (alpha, elevator, throttle) at the
// given condition into the complete state and control vectors, with
// all lateral channels zero.
func FullState(alpha, elevator, throttle, velocity, altitude, gamma float64) (flightdyn.State, flightdyn.Control) {
	theta := alpha + gamma
	u := velocity * math.Cos(alpha)
	w := velocity * math.Sin(alpha)

	x := make(flightdyn.State, flightdyn.StateDim)
	x[flightdyn.StateU] = u
	x[flightdyn.StateW] = w
	x[flightdyn.StateTheta] = theta
	x[flightdyn.StateZ] = -altitude

	uc := make(flightdyn.Control, flightdyn.ControlDim)
	uc[flightdyn.ControlElevator] = elevator
	uc[flightdyn.ControlThrottle] = throttle
	return x, uc
}

// residual evaluates (udot, wdot, qdot) for a candidate vector.
func (s *Solver) residual(c [3]float64, velocity, altitude, gamma float64) [3]float64 {
	x, uc := FullState(c[0], c[1], c[2], velocity, altitude, gamma)
	dx := s.aircraft.Derive(x, uc, 0)
	return [3]float64{
		dx[flightdyn.StateU],
		dx[flightdyn.StateW],
		dx[flightdyn.StateQ],
	}
}

// Solve finds the trim state at true airspeed velocity [m/s], altitude
// [m] and flight-path angle gamma [rad]. It runs a Newton iteration
// from [0.05, -0.05, 0.5], retries once from
// [0.1, -0.1, 0.8], and returns a *ConvergenceError if both fail.
func (s *Solver) Solve(velocity, altitude, gamma float64) (*State, error) {
	guesses := [][3]float64{
		{0.05, -0.05, 0.5},
		{0.1, -0.1, 0.8},
	}

	var lastErr *ConvergenceError
	for _, guess := range guesses {
		sol, err := s.newton(guess, velocity, altitude, gamma)
		if err == nil {
			theta := sol[0] + gamma
			return &State{
				Alpha:           sol[0],
				Elevator:        sol[1],
				Throttle:        sol[2],
				U:               velocity * math.Cos(sol[0]),
				W:               velocity * math.Sin(sol[0]),
				Theta:           theta,
				Velocity:        velocity,
				Altitude:        altitude,
				FlightPathAngle: gamma,
			}, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// newton runs the iteration from one starting point. The 3x3 Jacobian
// is built by central differences and solved with a dense LU.
func (s *Solver) newton(c [3]float64, velocity, altitude, gamma float64) ([3]float64, *ConvergenceError) {
	res := s.residual(c, velocity, altitude, gamma)

	for iter := 0; iter < maxIterations; iter++ {
		norm := math.Sqrt(res[0]*res[0] + res[1]*res[1] + res[2]*res[2])
		if norm < residualTol {
			return c, nil
		}
		if math.IsNaN(norm) || math.IsInf(norm, 0) {
			return c, &ConvergenceError{
				Message:  fmt.Sprintf("residual diverged at iteration %d", iter),
				Residual: norm,
			}
		}

		jac := mat.NewDense(3, 3, nil)
		for j := 0; j < 3; j++ {
			cp, cm := c, c
			cp[j] += jacobianStep
			cm[j] -= jacobianStep
			rp := s.residual(cp, velocity, altitude, gamma)
			rm := s.residual(cm, velocity, altitude, gamma)
			for i := 0; i < 3; i++ {
				jac.Set(i, j, (rp[i]-rm[i])/(2*jacobianStep))
			}
		}

		rhs := mat.NewVecDense(3, []float64{-res[0], -res[1], -res[2]})
		var step mat.VecDense
		if err := step.SolveVec(jac, rhs); err != nil {
			return c, &ConvergenceError{
				Message:  fmt.Sprintf("singular Jacobian at iteration %d: %v", iter, err),
				Residual: norm,
			}
		}

		for i := 0; i < 3; i++ {
			c[i] += step.AtVec(i)
		}
		res = s.residual(c, velocity, altitude, gamma)
	}

	norm := math.Sqrt(res[0]*res[0] + res[1]*res[1] + res[2]*res[2])
	return c, &ConvergenceError{
		Message:  fmt.Sprintf("no convergence within %d iterations", maxIterations),
		Residual: norm,
	}
}
