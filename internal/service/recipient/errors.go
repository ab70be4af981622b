package recipient

import "errors"

// Sentinel errors for the recipient service layer.
var (
	ErrNotFound     = errors.New("recipient not found")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrDuplicate    = errors.New("email already subscribed")
)
