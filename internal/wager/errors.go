package wager

import "errors"

// ErrNotFound is returned when the referenced wager does not exist.
var ErrNotFound = errors.New("wager not found")

// ErrLocked is returned when an edit hits a locked wager.
var ErrLocked = errors.New("wager is locked")
