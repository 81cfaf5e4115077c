// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrInvalidCredentials indicates a failed admin login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMalformedAuthHeader indicates an Authorization header that is not "Bearer <token>".
	ErrMalformedAuthHeader = errors.New("malformed authorization header")

	// ErrInvalidOrExpiredToken indicates a token that failed signature or expiry checks.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired token")

	// ErrNotAuthorized indicates a valid token without admin capability.
	ErrNotAuthorized = errors.New("not authorized")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates a request payload that violates a schema constraint.
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateKey indicates a unique constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUpload indicates a media host or transport failure during an upload.
	ErrUpload = errors.New("upload failed")
)
