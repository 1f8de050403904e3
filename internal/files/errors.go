package files

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFile         = errors.New("no file uploaded")
	ErrTooManyFiles        = errors.New("too many files")
	ErrUnexpectedField     = errors.New("unexpected field")
	ErrInvalidPage         = errors.New("invalid page index")
	ErrInvalidItemsPerPage = errors.New("invalid items per page")
	ErrPageNotFound        = errors.New("page not found")
	ErrEmpty               = errors.New("no stored files")
)

// ReadError reports a storage directory or entry that could not be read
type ReadError struct {
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("failed to read storage directory: %v", e.Err)
	}
	return fmt.Sprintf("failed to read %q: %v", e.Name, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
