package repository

import "errors"

var (
	// ErrNotPending is returned when a decision targets a recruit that is no
	// longer pending, including when another decision won a concurrent race.
	ErrNotPending = errors.New("recruit is not pending")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("unique constraint violated")
)
