package account

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrWeakPassword          = errors.New("password too short")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidRole           = errors.New("invalid role")
	ErrConflict              = errors.New("handle or email already taken")
	ErrAccountNotFound       = errors.New("account not found")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidToken          = errors.New("invalid refresh token")
	ErrInsufficientRole      = errors.New("insufficient role")
)
