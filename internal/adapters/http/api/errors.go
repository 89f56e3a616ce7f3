package api

import (
	"errors"
	"fmt"
)

// ErrBadRequest marks request decode and validation failures.
var ErrBadRequest = errors.New("bad request")

// WrapKind attaches an operation name and sentinel kind to a cause.
func WrapKind(op string, kind, err error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, err)
}
