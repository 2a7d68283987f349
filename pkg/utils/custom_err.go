package utils

import (
	"errors"
	"fmt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrFlightPlanNotFound = errors.New("flight plan not found")
	ErrDatabaseError      = errors.New("database error")
)

// AuthReason records why a request failed authentication. Every reason maps to
// the same 401 response; the distinction exists so callers and tests can tell
// a missing token from a bad one.
type AuthReason string

const (
	AuthReasonMissingToken   AuthReason = "missing_token"
	AuthReasonMalformedToken AuthReason = "malformed_token"
	AuthReasonBadSignature   AuthReason = "bad_signature"
	AuthReasonExpiredToken   AuthReason = "expired_token"
	AuthReasonUnknownUser    AuthReason = "unknown_user"
)

type AuthError struct {
	Reason AuthReason
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unauthenticated (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unauthenticated (%s)", e.Reason)
}

// Unwrap makes every AuthError match ErrUnauthenticated under errors.Is.
func (e *AuthError) Unwrap() error {
	return ErrUnauthenticated
}

func Unauthenticated(reason AuthReason, cause error) *AuthError {
	return &AuthError{Reason: reason, Err: cause}
}
