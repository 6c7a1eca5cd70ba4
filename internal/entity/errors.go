package entity

import (
	"errors"
	"strings"
)

var (
	// ErrPostNotFound is returned when a like toggle references a post id
	// that does not exist.
	ErrPostNotFound = errors.New("post not found")

	// ErrUploadFailed is the generic user-facing message for a failed image
	// upload. The underlying cause stays in the logs.
	ErrUploadFailed = errors.New("image upload failed, post was not created")

	// ErrConstraintViolation surfaces a write the store rejected, e.g. a
	// post whose owner does not exist.
	ErrConstraintViolation = errors.New("constraint violation")
)

// ValidationError carries every violation found in a submission so the
// caller can show all of them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, " ")
}
