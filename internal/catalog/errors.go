package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrMissingColumn     = errors.New("missing catalog column")
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	ErrEmptySource       = errors.New("catalog source is empty")
)

// MissingColumnError names the required column absent from the source.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column in catalog: %s", e.Column)
}

func (e *MissingColumnError) Unwrap() error {
	return ErrMissingColumn
}
