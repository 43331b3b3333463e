package flightdyn

import (
	"math"

	"github.com/flightlab/trimlab/internal/atmos"
)

const (
	gravity = 9.80665

	// minAirspeed guards the aerodynamic-angle and rate-ratio terms
	// against division by zero. The model is not low-speed accurate.
	minAirspeed = 0.1

	// maxThrust is the sea-level thrust placeholder, scaled by the
	// density ratio. Not a propulsion model.
	maxThrust = 2000.0
)

// Derive computes the 12-element state derivative for the flat-earth,
// body-axis rigid-body model. Pure: it reads only x, u and the
// aircraft parameters. The time argument is unused (the dynamics are
// autonomous) but kept for the System interface.
func (a *Aircraft) Derive(x State, uc Control, _ float64) State {
	u, v, w := x[StateU], x[StateV], x[StateW]
	p, q, r := x[StateP], x[StateQ], x[StateR]
	phi, theta, psi := x[StatePhi], x[StateTheta], x[StatePsi]
	z := x[StateZ]

	// Aileron and rudder deflections carry no derivative in this
	// coefficient set, so only elevator and throttle enter the model.
	elevator := uc[ControlElevator]
	throttle := uc[ControlThrottle]

	air := atmos.At(-z)
	rho := air.Density

	vel := math.Sqrt(u*u + v*v + w*w)
	if vel < minAirspeed {
		vel = minAirspeed
	}

	alpha := math.Atan2(w, u)
	sinBeta := v / vel
	if sinBeta > 1 {
		sinBeta = 1
	} else if sinBeta < -1 {
		sinBeta = -1
	}
	beta := math.Asin(sinBeta)

	qbar := 0.5 * rho * vel * vel

	// Linear coefficient expansion in alpha, beta, normalized rates
	// and controls.
	cl := a.CL0 + a.CLAlpha*alpha + a.CLQ*(a.C/(2*vel))*q + a.CLDe*elevator
	cd := a.CD0 + a.CDAlpha*math.Abs(alpha)
	cm := a.Cm0 + a.CmAlpha*alpha + a.CmQ*(a.C/(2*vel))*q + a.CmDe*elevator

	cy := a.CyBeta * beta
	cRoll := a.ClBeta*beta + a.ClP*(a.B/(2*vel))*p
	cYaw := a.CnBeta*beta + a.CnR*(a.B/(2*vel))*r

	// Lift and drag rotated from wind to body axes through alpha.
	sinA, cosA := math.Sin(alpha), math.Cos(alpha)
	fxAero := qbar * a.S * (-cd*cosA + cl*sinA)
	fzAero := qbar * a.S * (-cd*sinA - cl*cosA)
	fyAero := qbar * a.S * cy

	lMom := qbar * a.S * a.B * cRoll
	mMom := qbar * a.S * a.C * cm
	nMom := qbar * a.S * a.B * cYaw

	thrust := throttle * maxThrust * (rho / 1.225)

	sinPhi, cosPhi := math.Sin(phi), math.Cos(phi)
	sinTh, cosTh := math.Sin(theta), math.Cos(theta)

	m := a.Mass
	fx := fxAero + thrust - m*gravity*sinTh
	fy := fyAero + m*gravity*cosTh*sinPhi
	fz := fzAero + m*gravity*cosTh*cosPhi

	// Newton in the rotating body frame.
	udot := fx/m - (q*w - r*v)
	vdot := fy/m - (r*u - p*w)
	wdot := fz/m - (p*v - q*u)

	// Euler equations with Ixz coupling; qdot decouples for
	// Ixy = Iyz = 0, pdot/rdot solve as a 2x2 system.
	gyro1 := (a.Izz-a.Iyy)*q*r - a.Ixz*p*q
	gyro2 := (a.Ixx-a.Izz)*p*r + a.Ixz*(p*p-r*r)
	gyro3 := (a.Iyy-a.Ixx)*p*q + a.Ixz*q*r

	qdot := (mMom - gyro2) / a.Iyy

	det := a.Ixx*a.Izz - a.Ixz*a.Ixz
	pdot := (a.Izz*(lMom-gyro1) + a.Ixz*(nMom-gyro3)) / det
	rdot := (a.Ixz*(lMom-gyro1) + a.Ixx*(nMom-gyro3)) / det

	// Euler-angle kinematics. Singular at theta = ±90°.
	phiDot := p + (q*sinPhi+r*cosPhi)*math.Tan(theta)
	thetaDot := q*cosPhi - r*sinPhi
	psiDot := (q*sinPhi + r*cosPhi) / cosTh

	// Body velocities to NED rates through the direction cosine matrix.
	sinPsi, cosPsi := math.Sin(psi), math.Cos(psi)
	xDot := cosTh*cosPsi*u + (sinPhi*sinTh*cosPsi-cosPhi*sinPsi)*v + (cosPhi*sinTh*cosPsi+sinPhi*sinPsi)*w
	yDot := cosTh*sinPsi*u + (sinPhi*sinTh*sinPsi+cosPhi*cosPsi)*v + (cosPhi*sinTh*sinPsi-sinPhi*cosPsi)*w
	zDot := -sinTh*u + sinPhi*cosTh*v + cosPhi*cosTh*w

	return State{
		udot, vdot, wdot,
		pdot, qdot, rdot,
		phiDot, thetaDot, psiDot,
		xDot, yDot, zDot,
	}
}
