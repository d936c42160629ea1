package errorvalues

import "errors"

var (
	ErrCategoryNotFound = errors.New("category doesn't exist")
	ErrItemNotFound     = errors.New("item doesn't exist")
	ErrInvalidItem      = errors.New("invalid custom item")
	ErrNotInitialized   = errors.New("tracker isn't initialized")
)
