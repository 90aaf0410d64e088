package demo

import "errors"

var (
	// ErrInvalidSamples is returned when the sample fixture cannot be decoded
	// or holds fewer than two valid items.
	ErrInvalidSamples = errors.New("invalid sample items")

	// ErrFetchFailed stops the run when the second item cannot be read back.
	ErrFetchFailed = errors.New("fetching the item back failed")

	// ErrDeleteFailed stops the run when the fetched item cannot be deleted.
	ErrDeleteFailed = errors.New("deleting the item failed")
)
