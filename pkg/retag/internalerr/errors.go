package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrEmptyInput    = errors.New("empty input")
	ErrEmptySource   = errors.New("empty source")
	ErrNotEnoughTags = errors.New("not enough tags")
	ErrInvalidConfig = errors.New("invalid configuration")
)
