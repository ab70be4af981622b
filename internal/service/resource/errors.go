package resource

import "errors"

// Sentinel errors for the resource service layer.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrEmptyName   = errors.New("resource name is required")
	ErrMissingFile = errors.New("resource file is required")
)
