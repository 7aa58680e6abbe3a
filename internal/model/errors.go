package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")

	// Session errors
	ErrNoSession = errors.New("no session marker")
)
