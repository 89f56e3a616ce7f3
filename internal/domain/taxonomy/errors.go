package taxonomy

import "errors"

// Sentinel kinds for catalog construction errors.
var (
	ErrInvalidSkill   = errors.New("invalid skill entry")
	ErrDuplicateSkill = errors.New("duplicate canonical skill id")
	ErrAliasConflict  = errors.New("alias maps to multiple skills")
)
