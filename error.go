package mwmregistry

import "fmt"

// ErrorCode enumerates the domain error categories a Coordinator can report.
type ErrorCode int

const (
	// Unknown represents an unspecified error condition.
	Unknown ErrorCode = iota
	// InvalidFile means the version probe failed or yielded invalid scale metadata.
	InvalidFile
	// StaleVersion means the incoming file is older than the currently registered one.
	StaleVersion
	// NotRegistered means the region name has no current descriptor.
	NotRegistered
	// NotUpToDate means the descriptor is MarkedForDeregister or Deregistered.
	NotUpToDate
	// PayloadFactoryFailure means the external payload factory returned an error.
	PayloadFactoryFailure
)

// Error is a domain error carrying a code, the wrapped error and optional user data.
type Error struct {
	Code     ErrorCode
	Err      error
	UserData any
}

// Error implements the error interface by formatting the code, user data, and wrapped error details.
func (e Error) Error() string {
	return fmt.Errorf("error code: %d, user data: %v, details: %w", e.Code, e.UserData, e.Err).Error()
}

// Unwrap exposes the wrapped error for errors.Is/errors.As.
func (e Error) Unwrap() error {
	return e.Err
}
