// Package common defines sentinel errors shared by the server layers.
// Callers match them with errors.Is.
//
// The request-facing errors carry the exact message the API returns to
// clients in {"error": ...}, so their texts must not change.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Authentication.
	ErrMissingKeys   = errors.New("missing keys in POST request body")
	ErrUnknownUser   = errors.New("username doesn't exist.")
	ErrWrongPassword = errors.New("wrong password.")

	// Registration.
	ErrUsernameTooShort = errors.New("username must have at least 4 characters")
	ErrPasswordTooShort = errors.New("password must have at least 8 characters")
	ErrUsernameInvalid  = errors.New("username must not contain NUL characters")
	ErrNotAllowed       = errors.New("current user is not allowed to register new users")
	ErrUsernameTaken    = errors.New("username already exists.")
)

// requestErrors are reported to the client verbatim with HTTP 200.
var requestErrors = []error{
	ErrMissingKeys,
	ErrUnknownUser,
	ErrWrongPassword,
	ErrUsernameTooShort,
	ErrPasswordTooShort,
	ErrUsernameInvalid,
	ErrNotAllowed,
	ErrUsernameTaken,
}

// RequestError returns the sentinel that err wraps when it is one of the
// client-facing errors.
func RequestError(err error) (error, bool) {
	for _, e := range requestErrors {
		if errors.Is(err, e) {
			return e, true
		}
	}
	return nil, false
}
