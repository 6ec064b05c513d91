package wiretile

import "errors"

var (
	// ErrInvalidParameters is returned by New when the detector
	// parameters are out of range: an angle outside (0, 180) degrees,
	// a zero or negative pitch, or less than one Y wire.
	ErrInvalidParameters = errors.New("invalid detector parameters")

	// ErrDegenerateGeometry is returned by New when a wire angle
	// makes the plane generation degenerate (vanishing sine or
	// tangent where a division by it is required).
	ErrDegenerateGeometry = errors.New("degenerate wire geometry")

	// ErrDegenerateIntersection is returned by IntersectUV when the
	// two wire lines are parallel within tolerance.
	ErrDegenerateIntersection = errors.New("degenerate wire intersection")
)
