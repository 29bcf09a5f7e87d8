package models

import "time"

// User is a registered account. RecoveryContact is sealed; a nil value means
// magic-link recovery is unavailable for this user.
type User struct {
	ID              string
	Handle          string
	Method          AuthMethod
	CanDownload     bool
	IsAdmin         bool
	Disabled        bool
	RecoveryEnabled bool
	RecoveryContact []byte
	CreatedAt       time.Time
	LastLoginAt     *time.Time
}

// Credential is the verifier-specific payload bound 1:1 to a user. Payload is
// sealed and immutable; only ReplayCounter moves after creation.
type Credential struct {
	UserID        string
	Method        AuthMethod
	Payload       []byte
	ReplayCounter int64
	CreatedAt     time.Time
}
