package service

import (
	"errors"
	"fmt"

	"storage-manager/internal/database"
)

var (
	// ErrNotFound covers both missing resources and resources owned by
	// someone else; callers cannot tell the two apart.
	ErrNotFound       = errors.New("resource not found")
	ErrParentNotFound = errors.New("target folder not found")
	ErrDuplicateName  = database.ErrDuplicateName
	ErrQuotaExceeded  = errors.New("storage quota exceeded")
	ErrNotEmpty       = errors.New("folder is not empty")
	ErrValidation     = errors.New("validation failed")
)

// NotEmptyError is returned by a non-forced delete of a folder with content.
// Count includes direct and indirect subfolders, files and notes.
type NotEmptyError struct {
	Count int64
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("folder is not empty: contains %d items", e.Count)
}

func (e *NotEmptyError) Is(target error) bool {
	return target == ErrNotEmpty
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
