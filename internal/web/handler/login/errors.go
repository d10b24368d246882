// Package login provides HTTP handlers and helpers for operator authentication.
//
// This file defines exported error values used throughout the login flow.
package login

import "errors"

var (
	// ErrInvalidCredentials is returned when the provided username and/or
	// password are not valid.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountInactive is returned when the account exists but is disabled.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInternalServerError is returned for unexpected failures during the
	// login process.
	ErrInternalServerError = errors.New("internal server error")
)
