package rubric

import "errors"

// Sentinel kinds for rubric validation faults.
var (
	ErrEmptyResume = errors.New("no content to score")
)
