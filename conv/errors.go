package conv

import "errors"

var (
	//ErrUnsupported is returned when no conversion exists between source and target types
	ErrUnsupported = errors.New("unsupported conversion")
	//ErrOverflow is returned when a numeric value does not fit the target type
	ErrOverflow = errors.New("value out of range")
)
