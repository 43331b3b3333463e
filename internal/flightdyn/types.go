package flightdyn

import "math"

// State is the 12-element rigid-body state vector.
type State []float64

// State vector channel indices.
const (
	StateU     = iota // body x velocity [m/s]
	StateV            // body y velocity [m/s]
	StateW            // body z velocity [m/s]
	StateP            // roll rate [rad/s]
	StateQ            // pitch rate [rad/s]
	StateR            // yaw rate [rad/s]
	StatePhi          // roll angle [rad]
	StateTheta        // pitch angle [rad]
	StatePsi          // yaw angle [rad]
	StateX            // north position [m]
	StateY            // east position [m]
	StateZ            // down position [m]; altitude = -z

	StateDim = 12
)

// Control is the 4-element control vector.
type Control []float64

// Control vector channel indices.
const (
	ControlElevator = iota // [rad]
	ControlAileron         // [rad]
	ControlRudder          // [rad]
	ControlThrottle        // [0, 1]

	ControlDim = 4
)

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func (c Control) Clone() Control {
	out := make(Control, len(c))
	copy(out, c)
	return out
}

// System is the ODE interface the dynamics satisfy.
type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}
