package bloop

import "errors"

var (
	ErrOverflow     = errors.New("flick overflow")
	ErrUnderflow    = errors.New("flick underflow")
	ErrInvalidTempo = errors.New("tempo factor must be positive and finite")

	// ErrUnsupportedControl is returned by Modify for controls that have no
	// defined evaluation.
	ErrUnsupportedControl = errors.New("unsupported control")

	ErrUnsupportedEncoding = errors.New("unsupported sample encoding")
	ErrInvalidFormat       = errors.New("invalid audio format")
)
