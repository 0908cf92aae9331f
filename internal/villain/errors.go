package villain

import "errors"

// ErrDuplicateName is returned when a create or rename collides with an
// existing villain name.
var ErrDuplicateName = errors.New("villain name already taken")

// ErrInvalidScore is returned when a rating falls outside the 1-99 scale.
var ErrInvalidScore = errors.New("score must be between 1 and 99")

// ErrNotFound is returned when the referenced villain does not exist.
var ErrNotFound = errors.New("villain not found")
