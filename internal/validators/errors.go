package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyFullName        = errors.New("full name is required")
	ErrEmptyEmail           = errors.New("email is required")
	ErrEmptyPhone           = errors.New("phone is required")
	ErrEmptyPassword        = errors.New("password is required")
	ErrEmptyConfirmPassword = errors.New("password confirmation is required")

	ErrInvalidEmailFormat = errors.New("invalid email format")
	ErrPasswordsMismatch  = errors.New("passwords do not match")
)
