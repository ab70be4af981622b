package announcement

import "errors"

// Sentinel errors for the announcement service layer.
var (
	ErrNotFound     = errors.New("announcement not found")
	ErrEmptyTitle   = errors.New("announcement title is required")
	ErrEmptyContent = errors.New("announcement content is required")
)
