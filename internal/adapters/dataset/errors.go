package dataset

import "errors"

// Sentinel kinds for reference-data load faults. Load faults are fatal for
// the load, never for in-flight requests, which keep the previous snapshot.
var (
	ErrLoadSkills = errors.New("load skills document failed")
	ErrLoadJobs   = errors.New("load job listings failed")
	ErrBadRecord  = errors.New("malformed record")
)
