package gce

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

// IsNotFound checks if an error is a remote 404.
func IsNotFound(err error) bool {
	return isAPIErrorCode(err, http.StatusNotFound)
}

// IsAlreadyExists checks if an error indicates a name conflict.
func IsAlreadyExists(err error) bool {
	return isAPIErrorCode(err, http.StatusConflict)
}

// IsTransient checks if an error is a transient transport failure worth
// retrying: anything that never reached the API (no *googleapi.Error), or a
// server-side 5xx. Client errors are never transient.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return true
	}
	return apiErr.Code >= 500
}

// isAPIErrorCode checks if the error is an API error with the given status code.
func isAPIErrorCode(err error, code int) bool {
	if err == nil {
		return false
	}
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

// OperationError reports a terminal operation that completed with one or
// more sub-errors. It is fatal to the calling step and never retried.
type OperationError struct {
	Name   string
	Errors []*compute.OperationErrorErrors
}

func (e *OperationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, sub := range e.Errors {
		parts[i] = fmt.Sprintf("[%s] %s", sub.Code, sub.Message)
	}
	return fmt.Sprintf("operation %s failed: %s", e.Name, strings.Join(parts, "; "))
}

// operationFailed returns an OperationError if the terminal operation
// carries sub-errors, nil otherwise.
func operationFailed(op *compute.Operation) error {
	if op.Error == nil || len(op.Error.Errors) == 0 {
		return nil
	}
	return &OperationError{Name: op.Name, Errors: op.Error.Errors}
}
