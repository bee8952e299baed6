package formula

import "errors"

// ErrValue is the sentinel display value for any failed evaluation.
const ErrValue = "ERR"

var (
	ErrReference  = errors.New("reference not found")
	ErrArithmetic = errors.New("arithmetic error")
)
