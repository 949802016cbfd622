package utils

import "errors"

var (
	// store errors
	ErrNotFound = errors.New("not found")

	// auth errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	// otp errors
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPMismatch = errors.New("otp mismatch")

	ErrInvalidID = errors.New("invalid id")
)
