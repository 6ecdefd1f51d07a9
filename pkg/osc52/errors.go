package osc52

import "errors"

var (
	// ErrInvalidWriter is returned by WriteTo when no writer is supplied.
	ErrInvalidWriter = errors.New("osc52: invalid writer")

	// ErrUnknownMode indicates a mode name that ParseMode does not recognize.
	ErrUnknownMode = errors.New("osc52: unknown mode")

	// ErrUnknownClipboard indicates a clipboard name that ParseClipboard does not recognize.
	ErrUnknownClipboard = errors.New("osc52: unknown clipboard")

	// ErrUnknownOperation indicates an operation name that ParseOperation does not recognize.
	ErrUnknownOperation = errors.New("osc52: unknown operation")
)
