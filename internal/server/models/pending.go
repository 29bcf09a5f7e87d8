package models

import "time"

// PendingPurpose selects which pending-token table a token lives in.
type PendingPurpose string

const (
	PurposeRegistration PendingPurpose = "registration"
	PurposeRecovery     PendingPurpose = "recovery"
)

// PendingToken is a PendingRegistration or PendingRecovery. Subject is the
// candidate handle for registrations and the user id for recoveries.
type PendingToken struct {
	Purpose   PendingPurpose
	TokenHash string
	Subject   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type BackupCode struct {
	UserID    string
	CodeHash  string
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Challenge ceremony kinds.
const (
	CeremonyRegister = "register"
	CeremonyLogin    = "login"
)

// Challenge is a server-side ceremony state. Payload is sealed and opaque to
// the store. UserID is empty for registration and decoy challenges.
type Challenge struct {
	ID        string
	UserID    string
	Method    AuthMethod
	Ceremony  string
	Payload   []byte
	ExpiresAt time.Time
	CreatedAt time.Time
}
