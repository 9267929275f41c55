package common

import "errors"

var (
	// repository errors
	ErrorNotFound = errors.New("not found")

	// auth errors
	ErrorDuplicateUser      = errors.New("user already exists")
	ErrorInvalidCredentials = errors.New("invalid credentials")
	ErrorUnauthorized       = errors.New("unauthorized")

	ErrorValidation = errors.New("validation error")

	// database connection not established yet
	ErrorNotReady = errors.New("not ready")
)
