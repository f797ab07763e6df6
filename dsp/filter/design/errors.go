package design

import "errors"

var (
	// ErrInvalidParam reports a design parameter outside its legal domain
	// (non-positive order, negative ripple, band edges out of range).
	ErrInvalidParam = errors.New("design: invalid parameter")

	// ErrInfeasible reports a specification no filter of the requested
	// order can meet.
	ErrInfeasible = errors.New("design: infeasible specification")
)
