package service

import (
	"database/sql"
	"errors"
	"fmt"
)

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("manager role required for this club")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyMember      = errors.New("user is already a member of this club")
	ErrAlreadyExists      = errors.New("application form already exists")
	ErrAlreadyApplied     = errors.New("an application is already pending")
	ErrAlreadyDecided     = errors.New("application has already been decided")
	ErrInvalidInput       = errors.New("invalid input")
)

// notFound wraps sql.ErrNoRows as ErrNotFound naming the missing entity.
func notFound(err error, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %w", entity, ErrNotFound)
	}
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
