// Package common defines shared constants and sentinel errors used across
// gatekeeper components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrConflict   = errors.New("conflicting concurrent write")

	// Service-level errors.
	ErrorInternal  = errors.New("internal error")
	ErrUnavailable = errors.New("credential store unavailable")

	// Token and challenge lookups. Expired and absent are deliberately the same value.
	ErrExpiredOrNotFound = errors.New("expired or not found")
	ErrChallengeExpired  = fmt.Errorf("challenge: %w", ErrExpiredOrNotFound)

	// Verifier rejections.
	ErrSignatureInvalid    = errors.New("signature invalid")
	ErrCodeMismatch        = errors.New("code mismatch")
	ErrCodeWindowMismatch  = fmt.Errorf("no matching time window: %w", ErrCodeMismatch)
	ErrReplayDetected      = errors.New("replay detected")
	ErrCounterReplay       = fmt.Errorf("signature counter did not advance: %w", ErrReplayDetected)
	ErrCodeReplay          = fmt.Errorf("time window already consumed: %w", ErrReplayDetected)
	ErrCredentialNotFound  = errors.New("credential not found")
	ErrUnsupportedMethod   = errors.New("unsupported authentication method")
	ErrMalformedResponse   = errors.New("malformed authenticator response")
	ErrBackupCodeInvalid   = errors.New("backup code invalid")
	ErrRecoveryUnavailable = errors.New("recovery unavailable")

	// Session errors. A logged out or revoked session reads like an absent one.
	ErrSessionSuperseded = errors.New("session superseded")
	ErrSessionTerminated = fmt.Errorf("session terminated: %w", ErrExpiredOrNotFound)

	// Registration input.
	ErrHandleTaken    = errors.New("handle taken")
	ErrHandleInvalid  = errors.New("handle invalid")
	ErrContactInvalid = errors.New("contact invalid")

	// Account state. ErrAccountUnrecoverable is surfaced to administrators only.
	ErrAccountDisabled      = errors.New("account disabled")
	ErrAccountUnrecoverable = errors.New("account unrecoverable")
	ErrForbidden            = errors.New("forbidden")

	// ErrInvalidOrExpired is the only failure anonymous callers ever see for
	// token, challenge and verifier problems.
	ErrInvalidOrExpired = errors.New("invalid or expired")
)

// collapsed lists every error that must not be distinguishable by an
// anonymous caller.
var collapsed = []error{
	ErrExpiredOrNotFound,
	ErrSignatureInvalid,
	ErrCodeMismatch,
	ErrReplayDetected,
	ErrCredentialNotFound,
	ErrUnsupportedMethod,
	ErrMalformedResponse,
	ErrBackupCodeInvalid,
	ErrRecoveryUnavailable,
	ErrSessionSuperseded,
	ErrSessionTerminated,
	ErrAccountDisabled,
	ErrAccountUnrecoverable,
	ErrorNotFound,
	ErrConflict,
}

// Public maps err to what an anonymous caller may learn. Store and internal
// failures pass through unchanged so they still fail closed upstream.
func Public(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range collapsed {
		if errors.Is(err, c) {
			return ErrInvalidOrExpired
		}
	}
	return err
}

// Reason returns a short granular reason for administrative diagnostics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrChallengeExpired):
		return "ChallengeExpired"
	case errors.Is(err, ErrSessionTerminated):
		return "SessionTerminated"
	case errors.Is(err, ErrExpiredOrNotFound):
		return "ExpiredOrNotFound"
	case errors.Is(err, ErrSignatureInvalid):
		return "SignatureInvalid"
	case errors.Is(err, ErrCodeWindowMismatch):
		return "CodeWindowMismatch"
	case errors.Is(err, ErrCodeMismatch):
		return "CodeMismatch"
	case errors.Is(err, ErrCounterReplay):
		return "CounterReplay"
	case errors.Is(err, ErrReplayDetected):
		return "ReplayDetected"
	case errors.Is(err, ErrCredentialNotFound):
		return "CredentialNotFound"
	case errors.Is(err, ErrSessionSuperseded):
		return "SessionSuperseded"
	case errors.Is(err, ErrHandleTaken):
		return "HandleTaken"
	case errors.Is(err, ErrHandleInvalid):
		return "HandleInvalid"
	case errors.Is(err, ErrAccountUnrecoverable):
		return "AccountUnrecoverable"
	case errors.Is(err, ErrAccountDisabled):
		return "AccountDisabled"
	case errors.Is(err, ErrUnavailable):
		return "StoreUnavailable"
	default:
		return "Internal"
	}
}
