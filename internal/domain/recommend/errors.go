package recommend

import "errors"

// Sentinel kinds for recommendation validation faults.
var (
	ErrInvalidTopN            = errors.New("invalid top_n")
	ErrInvalidExperienceLevel = errors.New("invalid experience level")
)
