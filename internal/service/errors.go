package service

import "errors"

// Sentinel errors shared by the services. Handlers translate these to the
// HTTP taxonomy: validation → 400, not found → 404, forbidden → 403,
// credentials → 401, everything else → 500.
var (
	ErrIDRequired         = errors.New("id is required")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrFileRequired       = errors.New("file is required")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrTokenInvalid       = errors.New("invalid or expired token")
)
