package errors

import (
	"errors"
	"fmt"
)

// Domain failures. Each one maps to a single externally visible category
// in the HTTP layer, so callers wrap them with context and never replace them.
var (
	ErrNotFound         = fmt.Errorf("not found")
	ErrForbidden        = fmt.Errorf("forbidden")
	ErrInvalidReference = fmt.Errorf("invalid reference")
	ErrInvalidStatus    = fmt.Errorf("invalid status")
	ErrAlreadyJoined    = fmt.Errorf("already joined")
	ErrDuplicateRequest = fmt.Errorf("request already submitted")
	ErrAlreadyProcessed = fmt.Errorf("request already processed")
	ErrSelfMessage      = fmt.Errorf("cannot message yourself")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
	ErrUnauthenticated  = fmt.Errorf("unauthenticated")
)

// Storage-level uniqueness violations. The services check for existing rows
// before writing, so these only surface when that check was skipped.
var (
	ErrDuplicateThread   = fmt.Errorf("thread already exists")
	ErrDuplicateFavorite = fmt.Errorf("favorite already exists")
	ErrDuplicateMember   = fmt.Errorf("participant already exists")
)

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
