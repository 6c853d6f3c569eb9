package budget

import "errors"

var (
	ErrPersonRequired   = errors.New("person is required")
	ErrInvalidYear      = errors.New("invalid year")
	ErrPersonNotVisible = errors.New("person is outside the caller's scope")
)
