package auth

import "errors"

var (
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordAllDigits = errors.New("password cannot consist of digits only")

	ErrUnexpectedSigningMethod = errors.New("unexpected signing method")
	ErrInvalidToken            = errors.New("invalid token")
	ErrWrongTokenType          = errors.New("wrong token type")
)
