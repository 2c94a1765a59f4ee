// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Filter errors.
	ErrNegativeThreshold = errors.New("negative threshold")

	// Chart errors.
	ErrInvalidChartKind = errors.New("invalid chart kind")

	// Source errors.
	ErrSourceUnavailable = errors.New("sales source unavailable")
	ErrNotFound          = errors.New("not found")
	ErrNoWriter          = errors.New("source does not accept writes")

	// Export errors.
	ErrUnsupportedFormat = errors.New("unsupported export format")
	ErrNoData            = errors.New("no data available")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage returns the message meant for people if err carries one,
// and err.Error() otherwise.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}
