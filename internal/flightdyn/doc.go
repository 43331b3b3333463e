// Package flightdyn provides the rigid-body flight dynamics core:
// the state and control vector types, the aircraft parameter record,
// and the nonlinear equations of motion.
//
// The model is a flat-earth, body-axis 6-DOF rigid body with linear
// aerodynamic coefficients:
//
//   - [State]: 12-element vector [u v w p q r phi theta psi x y z]
//   - [Control]: 4-element vector [elevator aileron rudder throttle]
//   - [Aircraft]: immutable geometry/mass/aero parameter snapshot
//   - [Aircraft.Derive]: dX/dt = f(X, u, t)
//
// Euler-angle kinematics are singular at theta = ±90°; the model does
// not handle that case. Aerodynamics are a first-order expansion valid
// for subsonic, pre-stall flight.
package flightdyn
