package activity

import "errors"

// ErrInvalidInput indicates invalid activity input.
var ErrInvalidInput = errors.New("invalid activity input")
