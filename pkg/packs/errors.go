package packs

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownStrategy indicates an unrecognized list merge strategy
	ErrUnknownStrategy = errors.New("unknown list merge strategy")

	// ErrMissingIDKey indicates by_id merging without an id key
	ErrMissingIDKey = errors.New("id_key required for by_id strategy")

	// ErrPackNotFound indicates no system pack exists at the expected location
	ErrPackNotFound = errors.New("system pack not found")
)

// PackValidationError indicates a pack manifest failed schema validation.
type PackValidationError struct {
	Path    string
	Message string
}

func (e *PackValidationError) Error() string {
	return fmt.Sprintf("pack manifest invalid: %s: %s", e.Path, e.Message)
}

// OverlayError indicates an overlay file could not be applied.
type OverlayError struct {
	Rel string
	Err error
}

func (e *OverlayError) Error() string {
	return fmt.Sprintf("overlay %s: %v", e.Rel, e.Err)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}
