package nxncube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the nxncube package.
var (
	// Configuration errors
	ErrInvalidSides = errors.New("nxncube: invalid number of sides")

	// Move errors
	ErrInvalidMoveLayer = errors.New("nxncube: move layer out of range")
	ErrUnknownRotation  = errors.New("nxncube: unknown axis or turn")
	ErrNoHistory        = errors.New("nxncube: no move to undo")

	// ErrAxisConversion means a signed direction reached code that only
	// accepts canonical axes. It indicates a bug, not bad input.
	ErrAxisConversion = errors.New("nxncube: cannot convert negative direction to canonical axis")
)

// InvalidSidesError reports a side count below the minimum of 2.
type InvalidSidesError struct {
	Sides int
}

func (e *InvalidSidesError) Error() string {
	return fmt.Sprintf("nxncube: side count must be at least 2 but got %d", e.Sides)
}

func (e *InvalidSidesError) Unwrap() error {
	return ErrInvalidSides
}

// MoveLayerError reports a layer selector that does not fit the cube.
type MoveLayerError struct {
	Layer Layer
	Sides int
}

func (e *MoveLayerError) Error() string {
	return fmt.Sprintf("nxncube: layer %s out of range for a cube with %d sides", e.Layer, e.Sides)
}

func (e *MoveLayerError) Unwrap() error {
	return ErrInvalidMoveLayer
}
