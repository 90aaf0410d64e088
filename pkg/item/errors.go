package item

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned when an operation gets an empty document key.
	ErrMissingID = errors.New("item id is required")

	// ErrIDMismatch is returned by UpdateByID when the record carries a
	// different ID than the one being addressed.
	ErrIDMismatch = errors.New("item id does not match the addressed document")

	// ErrNotFound indicates the document (or its index) does not exist.
	ErrNotFound = errors.New("item not found")

	// ErrTransport indicates the request never got an answer from the cluster.
	ErrTransport = errors.New("search cluster unreachable")

	// ErrRejected indicates the cluster answered with an error status.
	// The joined *StoreError carries the details.
	ErrRejected = errors.New("search cluster rejected the request")

	// ErrSerialization indicates a record could not be encoded or a response
	// could not be decoded.
	ErrSerialization = errors.New("item serialization failed")
)

// StoreError is the error body returned by the cluster for a failed request.
type StoreError struct {
	Status int
	Type   string
	Reason string
}

func (e *StoreError) Error() string {
	switch {
	case e.Type != "" && e.Reason != "":
		return fmt.Sprintf("status %d: %s: %s", e.Status, e.Type, e.Reason)
	case e.Reason != "":
		return fmt.Sprintf("status %d: %s", e.Status, e.Reason)
	default:
		return fmt.Sprintf("status %d", e.Status)
	}
}
