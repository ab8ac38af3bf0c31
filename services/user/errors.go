package user

import "errors"

var (
	// ErrInvalidCredentials hides whether the email or the password was
	// wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when signing up with a known email.
	ErrEmailTaken = errors.New("email already in use")

	// ErrUserNotFound is returned when no account has the given ID.
	ErrUserNotFound = errors.New("user not found")
)
