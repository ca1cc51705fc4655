package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrInvalidPreference  = errors.New("invalid preference")
	ErrValidation         = errors.New("validation failed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
