// Package apperror defines the typed errors used across the analysis pipeline.
package apperror

import (
	"errors"
	"fmt"
)

// SchemaError indicates that a required column could not be resolved from the
// uploaded dataset.
type SchemaError struct {
	Field   string
	Aliases []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("no %s column found in dataset: expected one of %v", e.Field, e.Aliases)
}

// EmptyDatasetError indicates that no valid rows were available, either
// because the upload was empty or because cleaning dropped everything.
type EmptyDatasetError struct {
	Stage     string
	TotalRows int
}

func (e *EmptyDatasetError) Error() string {
	if e.TotalRows > 0 {
		return fmt.Sprintf("%s: no valid transactions remain out of %d rows, check date and amount formats", e.Stage, e.TotalRows)
	}
	return fmt.Sprintf("%s: empty dataset", e.Stage)
}

// StoreError wraps a challenge store failure with the user and challenge it
// concerns.
type StoreError struct {
	User      string
	Challenge string
	Err       error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("challenge store: user=%s challenge=%s: %v", e.User, e.Challenge, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// Sentinel conditions surfaced by challenge store implementations.
var (
	ErrChallengeActive    = errors.New("challenge is already active")
	ErrChallengeCompleted = errors.New("challenge is already completed")
	ErrChallengeNotFound  = errors.New("challenge not found for user")
	ErrChallengeNotActive = errors.New("can only update active challenges")
)

// IsClientError reports whether err should surface as a client-side problem
// (bad input) rather than an internal failure.
func IsClientError(err error) bool {
	var schemaErr *SchemaError
	var emptyErr *EmptyDatasetError
	return errors.As(err, &schemaErr) || errors.As(err, &emptyErr)
}
