// Package linearize builds a local linear state-space model about a
// trim point by central finite differences and extracts the classical
// longitudinal and lateral stability modes from its eigenvalues.
package linearize

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/flightlab/trimlab/internal/flightdyn"
	"github.com/flightlab/trimlab/internal/trim"
)

// ErrEigenFailed indicates the eigen solver did not converge on a
// subsystem matrix.
var ErrEigenFailed = errors.New("linearize: eigendecomposition failed")

// LinearizationError identifies which subsystem broke the modal
// decomposition.
type LinearizationError struct {
	Subsystem string
}

func (e *LinearizationError) Error() string {
	return fmt.Sprintf("eigendecomposition of %s subsystem failed to converge", e.Subsystem)
}

func (e *LinearizationError) Unwrap() error {
	return ErrEigenFailed
}

// DefaultStep is the finite-difference perturbation size. Fixed, not
// adaptive.
const DefaultStep = 1e-4

// Longitudinal and lateral channel selections.
var (
	lonStates   = []int{flightdyn.StateU, flightdyn.StateW, flightdyn.StateQ, flightdyn.StateTheta}
	lonControls = []int{flightdyn.ControlElevator, flightdyn.ControlThrottle}
	latStates   = []int{flightdyn.StateV, flightdyn.StateP, flightdyn.StateR, flightdyn.StatePhi}
	latControls = []int{flightdyn.ControlAileron, flightdyn.ControlRudder}
)

// Linearizer holds the Jacobians A (12x12) and B (12x4) of the
// dynamics about one trim point. The matrices are computed once in New
// and never mutated.
type Linearizer struct {
	aircraft *flightdyn.Aircraft

	xTrim flightdyn.State
	uTrim flightdyn.Control

	A *mat.Dense
	B *mat.Dense
}

// New linearizes the aircraft dynamics about ts with the default
// finite-difference step.
func New(a *flightdyn.Aircraft, ts *trim.State) *Linearizer {
	x, u := trim.FullState(ts.Alpha, ts.Elevator, ts.Throttle, ts.Velocity, ts.Altitude, ts.FlightPathAngle)
	l := &Linearizer{
		aircraft: a,
		xTrim:    x,
		uTrim:    u,
	}
	l.A, l.B = l.jacobians(DefaultStep)
	return l
}

// jacobians computes A = df/dx and B = df/du by central differences.
// The dynamics do not depend on horizontal position (flat earth,
// altitude-only atmosphere), so the x and y columns of A are set to
// zero without evaluation.
func (l *Linearizer) jacobians(step float64) (*mat.Dense, *mat.Dense) {
	n, m := flightdyn.StateDim, flightdyn.ControlDim

	a := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		if j == flightdyn.StateX || j == flightdyn.StateY {
			continue
		}
		xp := l.xTrim.Clone()
		xm := l.xTrim.Clone()
		xp[j] += step
		xm[j] -= step

		fp := l.aircraft.Derive(xp, l.uTrim, 0)
		fm := l.aircraft.Derive(xm, l.uTrim, 0)
		for i := 0; i < n; i++ {
			a.Set(i, j, (fp[i]-fm[i])/(2*step))
		}
	}

	b := mat.NewDense(n, m, nil)
	for j := 0; j < m; j++ {
		up := l.uTrim.Clone()
		um := l.uTrim.Clone()
		up[j] += step
		um[j] -= step

		fp := l.aircraft.Derive(l.xTrim, up, 0)
		fm := l.aircraft.Derive(l.xTrim, um, 0)
		for i := 0; i < n; i++ {
			b.Set(i, j, (fp[i]-fm[i])/(2*step))
		}
	}

	return a, b
}

// submatrix gathers A[rows, cols] into a fresh dense matrix.
func submatrix(src *mat.Dense, rows, cols []int) *mat.Dense {
	out := mat.NewDense(len(rows), len(cols), nil)
	for i, r := range rows {
		for j, c := range cols {
			out.Set(i, j, src.At(r, c))
		}
	}
	return out
}

// Longitudinal returns the 4x4 state matrix over {u, w, q, theta} and
// the 4x2 control matrix over {elevator, throttle}.
func (l *Linearizer) Longitudinal() (*mat.Dense, *mat.Dense) {
	return submatrix(l.A, lonStates, lonStates), submatrix(l.B, lonStates, lonControls)
}

// Lateral returns the 4x4 state matrix over {v, p, r, phi} and the
// 4x2 control matrix over {aileron, rudder}.
func (l *Linearizer) Lateral() (*mat.Dense, *mat.Dense) {
	return submatrix(l.A, latStates, latStates), submatrix(l.B, latStates, latControls)
}

// eigenvalues runs the unsymmetric eigen solver on a subsystem matrix.
// The decomposition imposes no eigenvalue ordering.
func eigenvalues(a *mat.Dense, subsystem string) ([]complex128, error) {
	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, &LinearizationError{Subsystem: subsystem}
	}
	return eig.Values(nil), nil
}

// LongitudinalModes returns the four eigenvalues of the longitudinal
// subsystem, unclassified and unordered.
func (l *Linearizer) LongitudinalModes() ([]complex128, error) {
	a, _ := l.Longitudinal()
	return eigenvalues(a, "longitudinal")
}

// LateralModes returns the four eigenvalues of the lateral subsystem,
// unclassified and unordered.
func (l *Linearizer) LateralModes() ([]complex128, error) {
	a, _ := l.Lateral()
	return eigenvalues(a, "lateral")
}
