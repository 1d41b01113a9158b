package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog operations.
var (
	// ErrUnknownModel indicates the requested model is not registered.
	ErrUnknownModel = errors.New("unknown model")

	// ErrNoEligibleModel indicates no registered model satisfies a
	// required capability.
	ErrNoEligibleModel = errors.New("no eligible model")
)

// Error wraps catalog errors with context.
type Error struct {
	Op    string // Operation that failed ("lookup", "cheapest", ...)
	Model string // Model ID, alias, or capability tag involved
	Err   error  // Underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("catalog %s %q: %v", e.Op, e.Model, e.Err)
	}
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new catalog error.
func NewError(op, model string, err error) *Error {
	return &Error{Op: op, Model: model, Err: err}
}

// IsUnknownModel checks if an error stems from an unregistered model.
func IsUnknownModel(err error) bool {
	return errors.Is(err, ErrUnknownModel)
}

// IsNoEligibleModel checks if an error stems from an unsatisfiable
// capability requirement.
func IsNoEligibleModel(err error) bool {
	return errors.Is(err, ErrNoEligibleModel)
}
