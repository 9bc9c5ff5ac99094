package errors

import "errors"

var (
	ErrAuthorNotFound     = errors.New("author not found")
	ErrDuplicateEmail     = errors.New("author email already registered")
	ErrInvalidAuthorInput = errors.New("invalid author input")
)
