package config

import (
	"errors"
)

// Sentinel error kinds so callers can branch with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
