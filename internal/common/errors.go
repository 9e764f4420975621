// Package common defines the sentinel errors shared by the registry's
// services, repositories and transport layers. Callers match them with
// errors.Is; the HTTP layer maps each one to a status code exactly once.
package common

import "errors"

var (
	// repository specific errors
	ErrNotFound = errors.New("not found")

	// registration / login errors
	ErrValidation         = errors.New("all fields are required")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// authorization errors
	ErrForbidden = errors.New("admin access required")

	// upload errors
	ErrInvalidFileType = errors.New("only image files are allowed")
	ErrFileTooLarge    = errors.New("file too large")

	// anything the API must not leak details about
	ErrInternal = errors.New("internal error")
)
