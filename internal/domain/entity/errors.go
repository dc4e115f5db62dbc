package entity

import (
	"errors"
)

// Sentinel errors shared across layers. Usecases wrap these with context via
// fmt.Errorf("...: %w", err); handlers translate them to status codes with
// errors.Is so no layer compares error strings.
var (
	// ErrValidation covers malformed or missing input.
	ErrValidation = errors.New("invalid input")

	// ErrInvalidMainTag means the main tag name does not resolve to an
	// existing system tag.
	ErrInvalidMainTag = errors.New("main tag must be an existing system tag")

	// ErrEmptyTagSet means the requested tag list normalizes to nothing.
	ErrEmptyTagSet = errors.New("tag list cannot be empty")

	// ErrInvalidParentType means a comment route names an unknown parent
	// collection token.
	ErrInvalidParentType = errors.New("invalid parent type")

	// ErrForbidden means the caller is authenticated but lacks the role or
	// ownership the operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound means the resource or its parent does not exist. Existence
	// is always checked before authorization, so a missing resource never
	// leaks a forbidden response.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict means a uniqueness constraint was violated, e.g. a tag name
	// creation race or a duplicate email.
	ErrConflict = errors.New("resource already exists")
)
