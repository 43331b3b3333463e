package flightdyn

import (
	"errors"
	"fmt"
)

// Domain errors for the flight dynamics core.
var (
	// ErrParameterBounds indicates an aircraft parameter outside its
	// valid range (geometry/mass/inertia must be strictly positive).
	ErrParameterBounds = errors.New("flightdyn: parameter out of valid bounds")

	// ErrDimensionMismatch indicates mismatched state/control lengths.
	ErrDimensionMismatch = errors.New("flightdyn: dimension mismatch between vector and model")
)

// ParamError reports which aircraft parameter violated its constraint.
type ParamError struct {
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("parameter %s = %g must be > 0", e.Name, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrParameterBounds
}
