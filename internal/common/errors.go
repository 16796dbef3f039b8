package common

import "errors"

var (
	// Validation errors.
	ErrorEmptyField          = errors.New("empty field")
	ErrorUnsupportedLanguage = errors.New("unsupported language")

	// Token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
