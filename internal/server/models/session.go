package models

import "time"

// Termination reasons recorded on a session row.
const (
	TerminationLogout     = "logout"
	TerminationSuperseded = "superseded"
	TerminationRevoked    = "revoked"
	TerminationDisabled   = "disabled"
	TerminationRecovery   = "recovery"
)

type Session struct {
	ID                string
	UserID            string
	TokenHash         string
	CreatedAt         time.Time
	LastActivityAt    time.Time
	ExpiresAt         *time.Time
	UserAgent         string
	OriginHash        string
	TerminatedAt      *time.Time
	TerminationReason string
}

// Live reports whether the session has not been terminated.
func (s *Session) Live() bool {
	return s.TerminatedAt == nil
}
