package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ErrCategoryNotFound covers both a missing category id and one owned by a
// different user; callers must not be able to tell the two apart.
var ErrCategoryNotFound = errors.New("category not found")

// ErrTransactionNotFound follows the same collapsing rule as
// ErrCategoryNotFound.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrCategoryInUse blocks deletion of a category that transactions still
// reference.
var ErrCategoryInUse = errors.New("category has transactions referencing it")

// ErrUploadFailed aborts a transaction write when the receipt image could not
// be stored.
var ErrUploadFailed = errors.New("could not store receipt image")
