package member

import "errors"

// Sentinel errors for the member service layer.
var (
	ErrNotFound  = errors.New("member not found")
	ErrEmptyName = errors.New("member name is required")
	ErrBadPhoto  = errors.New("photo is not a decodable image")
)
