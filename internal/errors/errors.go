// Package errors consolidates error definitions for the whole process.
//
// It provides sentinel errors for every error condition the core can
// surface, category checking predicates, and the mapping from core errors
// to gRPC status codes used by the RPC boundary.
package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinel errors for the core error kinds.
var (
	// Validation errors - resolved at the ingestion path, never reach storage
	ErrInvalidPoint = errors.New("invalid point")
	ErrInvalidQuery = errors.New("invalid query")

	// Transient write contention - callers may retry with backoff
	ErrBusy = errors.New("storage busy")

	// Fatal to the storage engine instance - surfaced for restart/exit
	// decisions, never retried internally
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Reserved for a reject-on-duplicate policy. The engine overwrites
	// duplicate (name, timestamp) keys, so this is never returned today.
	ErrDuplicateKey = errors.New("duplicate point key")
)

// New is a convenience wrapper for errors.New
var New = errors.New

// Is is a convenience wrapper for errors.Is
var Is = errors.Is

// As is a convenience wrapper for errors.As
var As = errors.As

// Wrap wraps an error with a message, preserving the error chain.
// Returns nil if err is nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// IsInvalid returns true if err is a data-validation error.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalidPoint) || errors.Is(err, ErrInvalidQuery)
}

// IsBusy returns true if err is transient write contention.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

// IsUnavailable returns true if err means the backing store is unusable.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// ToStatus maps a core error to a gRPC status for the RPC boundary.
// Validation failures become InvalidArgument, contention becomes
// Unavailable (retryable by convention), storage failures become Internal.
func ToStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case IsInvalid(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case IsBusy(err):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrDuplicateKey):
		return status.Error(codes.AlreadyExists, err.Error())
	case IsUnavailable(err):
		return status.Error(codes.Internal, "storage unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
