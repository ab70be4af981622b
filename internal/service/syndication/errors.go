package syndication

import "errors"

// Sentinel errors for the syndication service layer.
var (
	ErrNotFound    = errors.New("syndication entry not found")
	ErrEmptyTitle  = errors.New("title is required")
	ErrInvalidURL  = errors.New("a valid http(s) url is required")
	ErrEmptyName   = errors.New("document name is required")
	ErrMissingFile = errors.New("document file is required")
)
