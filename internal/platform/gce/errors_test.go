package gce

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	compute "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&googleapi.Error{Code: http.StatusNotFound}))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", &googleapi.Error{Code: http.StatusNotFound})))
	assert.False(t, IsNotFound(&googleapi.Error{Code: http.StatusConflict}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestIsAlreadyExists(t *testing.T) {
	assert.True(t, IsAlreadyExists(&googleapi.Error{Code: http.StatusConflict}))
	assert.False(t, IsAlreadyExists(&googleapi.Error{Code: http.StatusNotFound}))
	assert.False(t, IsAlreadyExists(nil))
}

func TestIsTransient(t *testing.T) {
	// Errors that never reached the API are transport failures.
	assert.True(t, IsTransient(errors.New("connection reset by peer")))
	assert.True(t, IsTransient(&googleapi.Error{Code: http.StatusBadGateway}))
	assert.True(t, IsTransient(&googleapi.Error{Code: http.StatusInternalServerError}))

	assert.False(t, IsTransient(&googleapi.Error{Code: http.StatusNotFound}))
	assert.False(t, IsTransient(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, IsTransient(nil))
}

func TestOperationErrorMessage(t *testing.T) {
	err := &OperationError{
		Name: "insert-vm17",
		Errors: []*compute.OperationErrorErrors{
			{Code: "QUOTA_EXCEEDED", Message: "Quota 'CPUS' exceeded"},
			{Code: "INVALID_USAGE", Message: "bad request"},
		},
	}
	msg := err.Error()
	assert.Contains(t, msg, "insert-vm17")
	assert.Contains(t, msg, "[QUOTA_EXCEEDED] Quota 'CPUS' exceeded")
	assert.Contains(t, msg, "[INVALID_USAGE] bad request")
}

func TestOperationFailed(t *testing.T) {
	assert.NoError(t, operationFailed(&compute.Operation{Status: "DONE"}))
	assert.NoError(t, operationFailed(&compute.Operation{Status: "DONE", Error: &compute.OperationError{}}))

	err := operationFailed(&compute.Operation{
		Name:   "op",
		Status: "DONE",
		Error: &compute.OperationError{
			Errors: []*compute.OperationErrorErrors{{Code: "X", Message: "y"}},
		},
	})
	assert.Error(t, err)
}
