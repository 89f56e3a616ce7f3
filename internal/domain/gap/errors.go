package gap

import "errors"

// Sentinel kinds for gap-analysis validation faults.
var (
	ErrUnknownRole  = errors.New("unknown role")
	ErrInvalidLevel = errors.New("invalid experience level")
)
